package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

const invitationTemplate = "student_invitation"

type Student struct {
	ID               int    `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	Email            string `json:"email" yaml:"email"`
	Avatar           string `json:"avatar" yaml:"avatar"`
	Level            int    `json:"level" yaml:"level"`
	XP               int    `json:"xp" yaml:"xp"`
	JoinedAt         string `json:"joined_at" yaml:"joinedAt"`
	LastActive       string `json:"last_active" yaml:"lastActive"`
	CompletedQuizzes int    `json:"completed_quizzes" yaml:"completedQuizzes"`
	PhotosCaptured   int    `json:"photos_captured" yaml:"photosCaptured"`
	TreesPlanted     int    `json:"trees_planted" yaml:"treesPlanted"`
	GoalsCompleted   int    `json:"goals_completed" yaml:"goalsCompleted"`
}

// NewStudent contains information needed to add a single Student to the roster.
type NewStudent struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar" validate:"omitempty,avatar"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true)
	ns.Avatar = core.CleanString(ns.Avatar, true)
	return validate.Struct(ns)
}

// Inviter is the teacher adding students, for the invitation email.
type Inviter struct {
	Name      string
	ClassCode string
}

type invitation struct {
	Name        string
	Email       string
	TeacherName string
	ClassCode   string
}

type Stats struct {
	Total          int `json:"total"`
	AvgLevel       int `json:"avg_level"`
	GoalsCompleted int `json:"goals_completed"`
	ActiveThisWeek int `json:"active_this_week"`
}
