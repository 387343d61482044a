package quiz

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

const (
	DefaultDuration   = 30 // minutes
	DefaultDifficulty = "Beginner"
)

var Difficulties = []string{"Beginner", "Intermediate", "Advanced"}

type Quiz struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Questions   int    `json:"questions" yaml:"questions"`
	Duration    int    `json:"duration" yaml:"duration"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`
	IsActive    bool   `json:"is_active" yaml:"isActive"`
	Completions int    `json:"completions" yaml:"completions"`
	AvgScore    int    `json:"avg_score" yaml:"avgScore"`
	CreatedAt   string `json:"created_at" yaml:"createdAt"`
}

type Question struct {
	Question      string   `json:"question" yaml:"question" validate:"required"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correctAnswer" validate:"gte=0"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// NewQuiz contains information needed to create a new Quiz.
type NewQuiz struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Duration    int        `json:"duration" validate:"omitempty,gt=0"`
	Difficulty  string     `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Questions   []Question `json:"questions" validate:"dive"`
}

func (nq *NewQuiz) Validate(validate *validator.Validate) error {
	nq.Title = core.CleanString(nq.Title)
	nq.Description = core.CleanString(nq.Description)
	nq.Difficulty = core.CleanString(nq.Difficulty)
	for i := range nq.Questions {
		nq.Questions[i].Question = core.CleanString(nq.Questions[i].Question)
	}
	return validate.Struct(nq)
}

type Stats struct {
	Active           int `json:"active"`
	TotalCompletions int `json:"total_completions"`
	AvgScore         int `json:"avg_score"`
	AvgDuration      int `json:"avg_duration"`
}
