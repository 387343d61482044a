package tree

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

const (
	defaultNotes = "Just planted with love!"
	justPlanted  = "Just planted"
	seedlingIcon = "🌱"
)

var Species = []string{
	"Oak Tree", "Pine Tree", "Maple Tree", "Birch Tree",
	"Cherry Tree", "Apple Tree", "Willow Tree", "Cedar Tree",
}

type Tree struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Species       string  `json:"species" yaml:"species"`
	Planted       string  `json:"planted" yaml:"planted"`
	Location      string  `json:"location" yaml:"location"`
	Health        int     `json:"health" yaml:"health"` // %
	Age           string  `json:"age" yaml:"age"`
	CO2AbsorbedKg float64 `json:"co2_absorbed_kg" yaml:"co2AbsorbedKg"`
	WaterGiven    int     `json:"water_given" yaml:"waterGiven"`
	Notes         string  `json:"notes" yaml:"notes"`
	Image         string  `json:"image" yaml:"image"`
}

// HealthLevel buckets Health the way the registry colours it.
func (t Tree) HealthLevel() string {
	switch {
	case t.Health >= 90:
		return "good"
	case t.Health >= 70:
		return "fair"
	default:
		return "poor"
	}
}

// NewTree contains information needed to plant a new Tree.
type NewTree struct {
	Name     string `json:"name" validate:"required"`
	Species  string `json:"species" validate:"required"`
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
}

func (nt *NewTree) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Species = core.CleanString(nt.Species)
	nt.Location = core.CleanString(nt.Location)
	nt.Notes = core.CleanString(nt.Notes)
	return validate.Struct(nt)
}

type Stats struct {
	Total      int     `json:"total"`
	TotalCO2Kg float64 `json:"total_co2_kg"`
	AvgHealth  int     `json:"avg_health"`
}
