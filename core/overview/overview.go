// Package overview composes the landing cards of the student and teacher dashboards.
package overview

import (
	"fmt"

	"github.com/trezcool/ecoquest/core"
)

type (
	Achievement struct {
		Title string `json:"title" yaml:"title"`
		Date  string `json:"date" yaml:"date"`
		Kind  string `json:"kind" yaml:"kind"` // tree, photo, goal
	}

	Activity struct {
		Student string `json:"student" yaml:"student"`
		Action  string `json:"action" yaml:"action"`
		Time    string `json:"time" yaml:"time"`
		Score   *int   `json:"score" yaml:"score"`
	}

	Event struct {
		Title string `json:"title" yaml:"title"`
		Date  string `json:"date" yaml:"date"`
		Type  string `json:"type" yaml:"type"`
	}

	// StudentMock holds the figures the prototype has no live source for.
	StudentMock struct {
		PhotosCaptured     int           `yaml:"photosCaptured"`
		TreesPlanted       int           `yaml:"treesPlanted"`
		GoalsCompleted     int           `yaml:"goalsCompleted"`
		TotalContributions int           `yaml:"totalContributions"`
		Rank               int           `yaml:"rank"`
		StreakDays         int           `yaml:"streakDays"`
		Achievements       []Achievement `yaml:"achievements"`
	}

	TeacherMock struct {
		TotalStudents        int        `yaml:"totalStudents"`
		ActiveQuizzes        int        `yaml:"activeQuizzes"`
		CompletedAssignments int        `yaml:"completedAssignments"`
		AverageScore         int        `yaml:"averageScore"`
		ClassCode            string     `yaml:"classCode"`
		WeeklyGrowth         int        `yaml:"weeklyGrowth"`
		RecentActivity       []Activity `yaml:"recentActivity"`
		UpcomingEvents       []Event    `yaml:"upcomingEvents"`
	}

	Mock struct {
		Student StudentMock `yaml:"student"`
		Teacher TeacherMock `yaml:"teacher"`
	}
)

type (
	// StudentLive are the signed-in student's figures computed from the session.
	StudentLive struct {
		Name           string
		AgeGroup       string
		Level          int
		XP             int
		PhotosCaptured int
		TreesPlanted   int
		GoalsCompleted int
	}

	TeacherLive struct {
		Name          string
		ClassCode     string
		TotalStudents int
		ActiveQuizzes int
		AverageScore  int
	}
)

type (
	StudentStats struct {
		PhotosCaptured     int `json:"photos_captured"`
		TreesPlanted       int `json:"trees_planted"`
		GoalsCompleted     int `json:"goals_completed"`
		TotalContributions int `json:"total_contributions"`
		Rank               int `json:"rank"`
		StreakDays         int `json:"streak_days"`
	}

	StudentOverview struct {
		Title        string        `json:"title"`
		Welcome      string        `json:"welcome"`
		Level        int           `json:"level"`
		XP           int           `json:"xp"`
		Stats        StudentStats  `json:"stats"`
		Achievements []Achievement `json:"achievements"`
	}

	TeacherStats struct {
		TotalStudents        int    `json:"total_students"`
		ActiveQuizzes        int    `json:"active_quizzes"`
		CompletedAssignments int    `json:"completed_assignments"`
		AverageScore         int    `json:"average_score"`
		ClassCode            string `json:"class_code"`
		WeeklyGrowth         int    `json:"weekly_growth"`
	}

	TeacherOverview struct {
		Welcome        string       `json:"welcome"`
		Stats          TeacherStats `json:"stats"`
		RecentActivity []Activity   `json:"recent_activity"`
		UpcomingEvents []Event      `json:"upcoming_events"`
	}
)

// Student builds the student overview: the session's own photos, trees and goals,
// the rest from mock. The title follows the student's age group theme.
func Student(mock StudentMock, live StudentLive) StudentOverview {
	title := core.DefaultTheme
	if g, ok := core.LookupAgeGroup(live.AgeGroup); ok {
		title = g.Theme
	}
	level := live.Level
	if level < 1 {
		level = 1
	}
	return StudentOverview{
		Title:   title,
		Welcome: fmt.Sprintf("Welcome back, %s! Ready to save the planet today?", live.Name),
		Level:   level,
		XP:      live.XP,
		Stats: StudentStats{
			PhotosCaptured:     live.PhotosCaptured,
			TreesPlanted:       live.TreesPlanted,
			GoalsCompleted:     live.GoalsCompleted,
			TotalContributions: mock.TotalContributions,
			Rank:               mock.Rank,
			StreakDays:         mock.StreakDays,
		},
		Achievements: append([]Achievement(nil), mock.Achievements...),
	}
}

// Teacher builds the teacher overview from the session's roster and quizzes plus mock activity.
// The class code is the teacher's own when set.
func Teacher(mock TeacherMock, live TeacherLive) TeacherOverview {
	code := live.ClassCode
	if code == "" {
		code = mock.ClassCode
	}
	return TeacherOverview{
		Welcome: fmt.Sprintf("Welcome back, %s!", live.Name),
		Stats: TeacherStats{
			TotalStudents:        live.TotalStudents,
			ActiveQuizzes:        live.ActiveQuizzes,
			CompletedAssignments: mock.CompletedAssignments,
			AverageScore:         live.AverageScore,
			ClassCode:            code,
			WeeklyGrowth:         mock.WeeklyGrowth,
		},
		RecentActivity: append([]Activity(nil), mock.RecentActivity...),
		UpcomingEvents: append([]Event(nil), mock.UpcomingEvents...),
	}
}
