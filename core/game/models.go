package game

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

const (
	DefaultType       = "quiz"
	DefaultAgeGroup   = "7-14"
	DefaultDuration   = 30 // minutes
	DefaultMaxPlayers = 30
	DefaultDifficulty = "Beginner"
)

type Type struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	Types = []Type{
		{ID: "quiz", Name: "Interactive Quiz", Description: "Q&A with multimedia elements"},
		{ID: "simulation", Name: "Environmental Simulation", Description: "Real-world scenario modeling"},
		{ID: "puzzle", Name: "Environmental Puzzle", Description: "Problem-solving challenges"},
		{ID: "collaborative", Name: "Team Challenge", Description: "Group-based activities"},
		{ID: "strategy", Name: "Strategy Game", Description: "Long-term planning and decisions"},
		{ID: "adventure", Name: "Eco Adventure", Description: "Story-driven exploration"},
	}

	Topics = []string{
		"Climate Change", "Ocean Conservation", "Forest Protection",
		"Air Quality", "Renewable Energy", "Waste Management",
		"Biodiversity", "Water Conservation", "Sustainable Agriculture",
	}
)

// TypeName maps a game type id (case-insensitive) to its display name.
// Unknown ids are returned verbatim.
func TypeName(id string) string {
	lower := strings.ToLower(id)
	for _, t := range Types {
		if t.ID == lower {
			return t.Name
		}
	}
	return id
}

type Game struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Topic       string `json:"topic,omitempty" yaml:"topic"`
	Difficulty  string `json:"difficulty,omitempty" yaml:"difficulty"`
	AgeGroup    string `json:"age_group" yaml:"ageGroup"`
	Duration    int    `json:"duration" yaml:"duration"`
	MaxPlayers  int    `json:"max_players" yaml:"maxPlayers"`
	IsActive    bool   `json:"is_active" yaml:"isActive"`
	Completions int    `json:"completions" yaml:"completions"`
	AvgScore    int    `json:"avg_score" yaml:"avgScore"`
	CreatedAt   string `json:"created_at" yaml:"createdAt"`
}

// NewGame contains information needed to create a new Game.
type NewGame struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Type        string `json:"type"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	AgeGroup    string `json:"age_group" validate:"omitempty,agegroup"`
	Duration    int    `json:"duration" validate:"omitempty,gt=0"`
	MaxPlayers  int    `json:"max_players" validate:"omitempty,gt=0"`
}

func (ng *NewGame) Validate(validate *validator.Validate) error {
	ng.Title = core.CleanString(ng.Title)
	ng.Description = core.CleanString(ng.Description)
	ng.Topic = core.CleanString(ng.Topic)
	ng.Type = core.CleanString(ng.Type)
	ng.Difficulty = core.CleanString(ng.Difficulty)
	ng.AgeGroup = core.CleanString(ng.AgeGroup)
	return validate.Struct(ng)
}

type Stats struct {
	Active           int `json:"active"`
	TotalCompletions int `json:"total_completions"`
	AvgScore         int `json:"avg_score"`
	AvgDuration      int `json:"avg_duration"`
}
