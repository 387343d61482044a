package goal

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

const DefaultUnit = "days"

var (
	Categories = []string{
		"Waste Reduction",
		"Energy Conservation",
		"Water Conservation",
		"Transportation",
		"Documentation",
		"Education",
		"Community Action",
		"Biodiversity",
	}

	Units = []string{"days", "photos", "items", "hours", "kg", "liters"}
)

type Goal struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Target      int    `json:"target" yaml:"target"`
	Current     int    `json:"current" yaml:"current"`
	Unit        string `json:"unit" yaml:"unit"`
	Deadline    string `json:"deadline" yaml:"deadline"`
	Status      Status `json:"status" yaml:"status"`
	XPReward    int    `json:"xp_reward" yaml:"xpReward"`
	CreatedAt   string `json:"created_at" yaml:"createdAt"`
	CompletedAt string `json:"completed_at,omitempty" yaml:"completedAt"`
}

func (g Goal) IsCompleted() bool { return g.Status == StatusCompleted }

// Progress is the completion percentage; it is not clamped.
func (g Goal) Progress() int { return records.Percentage(g.Current, g.Target) }

// NewGoal contains information needed to create a new Goal.
type NewGoal struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Target      int    `json:"target" validate:"required,gt=0"`
	Unit        string `json:"unit"`
	Deadline    string `json:"deadline" validate:"required,datetime=2006-01-02"`
}

func (ng *NewGoal) Validate(validate *validator.Validate) error {
	ng.Title = core.CleanString(ng.Title)
	ng.Description = core.CleanString(ng.Description)
	ng.Category = core.CleanString(ng.Category)
	ng.Unit = core.CleanString(ng.Unit)
	ng.Deadline = core.CleanString(ng.Deadline)
	return validate.Struct(ng)
}

// ProgressUpdate moves a goal's progress by Delta (may be negative).
type ProgressUpdate struct {
	Delta int `json:"delta" validate:"required"`
}

func (pu ProgressUpdate) Validate(validate *validator.Validate) error { return validate.Struct(pu) }

type Stats struct {
	Completed int `json:"completed"`
	Active    int `json:"active"`
	XPEarned  int `json:"xp_earned"`
}
