package overview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent(t *testing.T) {
	mock := StudentMock{
		PhotosCaptured: 12, TreesPlanted: 5, GoalsCompleted: 3, TotalContributions: 8, Rank: 15, StreakDays: 7,
		Achievements: []Achievement{{Title: "First Tree Planted", Date: "2 days ago", Kind: "tree"}},
	}

	got := Student(mock, StudentLive{Name: "Emma", AgeGroup: "15-18", Level: 3, XP: 420, PhotosCaptured: 4, TreesPlanted: 2, GoalsCompleted: 1})
	assert.Equal(t, StudentOverview{
		Title:   "Eco Warrior Command Center",
		Welcome: "Welcome back, Emma! Ready to save the planet today?",
		Level:   3,
		XP:      420,
		Stats: StudentStats{
			PhotosCaptured: 4, TreesPlanted: 2, GoalsCompleted: 1,
			TotalContributions: 8, Rank: 15, StreakDays: 7,
		},
		Achievements: mock.Achievements,
	}, got)

	got = Student(mock, StudentLive{Name: "New"})
	assert.Equal(t, "Dashboard", got.Title, "no age group yet")
	assert.Equal(t, 1, got.Level)
}

func TestTeacher(t *testing.T) {
	score := 95
	mock := TeacherMock{
		TotalStudents: 45, ActiveQuizzes: 3, CompletedAssignments: 89, AverageScore: 85, ClassCode: "ECO2025", WeeklyGrowth: 12,
		RecentActivity: []Activity{{Student: "Emma Thompson", Action: "Completed Quiz: Climate Change", Time: "2 hours ago", Score: &score}},
		UpcomingEvents: []Event{{Title: "Earth Day Project Presentations", Date: "2025-04-22", Type: "event"}},
	}

	got := Teacher(mock, TeacherLive{Name: "Ms Green", TotalStudents: 3, ActiveQuizzes: 2, AverageScore: 85})
	assert.Equal(t, TeacherStats{
		TotalStudents: 3, ActiveQuizzes: 2, CompletedAssignments: 89, AverageScore: 85, ClassCode: "ECO2025", WeeklyGrowth: 12,
	}, got.Stats)
	assert.Equal(t, "Welcome back, Ms Green!", got.Welcome)
	assert.Len(t, got.RecentActivity, 1)
	assert.Len(t, got.UpcomingEvents, 1)

	got = Teacher(mock, TeacherLive{ClassCode: "GREEN7"})
	assert.Equal(t, "GREEN7", got.Stats.ClassCode)
}
