package content

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

type Type struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	Types = []Type{
		{ID: "presentation", Name: "PowerPoint Presentation", Description: "Interactive slide deck with visuals"},
		{ID: "lesson-plan", Name: "Lesson Plan", Description: "Structured teaching guide with activities"},
		{ID: "worksheet", Name: "Student Worksheet", Description: "Printable activities and exercises"},
		{ID: "infographic", Name: "Educational Infographic", Description: "Visual summary with key facts"},
		{ID: "video-script", Name: "Video Script", Description: "Script for educational video content"},
	}

	Topics = []string{
		"Climate Change", "Renewable Energy", "Ocean Conservation", "Forest Ecosystems", "Air Pollution",
		"Waste Management", "Biodiversity", "Sustainable Living", "Water Conservation", "Green Technology",
	}
)

func lookupType(id string) (Type, bool) {
	for _, t := range Types {
		if t.ID == id {
			return t, true
		}
	}
	return Type{}, false
}

type Slide struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Template is a hand-written piece of material for one topic, age group and type.
type Template struct {
	Title      string   `yaml:"title"`
	Slides     []Slide  `yaml:"slides"`
	Objectives []string `yaml:"objectives"`
	Materials  []string `yaml:"materials"`
	Activities []string `yaml:"activities"`
}

// Templates are keyed by topic, then age group id, then content type id.
type Templates map[string]map[string]map[string]Template

// Material is generated teaching content.
type Material struct {
	Topic      string   `json:"topic"`
	AgeGroup   string   `json:"age_group"`
	Type       string   `json:"type"`
	TypeID     string   `json:"type_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content,omitempty"`
	Slides     []Slide  `json:"slides,omitempty"`
	Objectives []string `json:"objectives,omitempty"`
	Materials  []string `json:"materials,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// Request selects what to generate.
type Request struct {
	Topic    string `json:"topic" validate:"required"`
	AgeGroup string `json:"age_group" validate:"required,agegroup"`
	Type     string `json:"type" validate:"required,oneof=presentation lesson-plan worksheet infographic video-script"`
}

func (r *Request) Validate(validate *validator.Validate) error {
	r.Topic = core.CleanString(r.Topic)
	r.AgeGroup = core.CleanString(r.AgeGroup, true)
	r.Type = core.CleanString(r.Type, true)
	return validate.Struct(r)
}
