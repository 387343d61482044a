package photo

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

// TimestampLayout is how capture times are recorded, e.g. "2025-01-15 14:30".
const TimestampLayout = "2006-01-02 15:04"

const (
	defaultTitle    = "New Environmental Photo"
	defaultLocation = "Current Location"

	minXP = 15
	maxXP = 35 // exclusive
)

var (
	Categories = []string{
		"Air Quality",
		"Water Pollution",
		"Soil Health",
		"Waste Management",
		"Biodiversity",
		"Renewable Energy",
		"Conservation",
		"Reforestation",
	}

	categoryTag  = "photocategory"
	categoryText = "unknown photo category"
)

type Photo struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Location  string `json:"location" yaml:"location"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Category  string `json:"category" yaml:"category"`
	XPEarned  int    `json:"xp_earned" yaml:"xpEarned"`
	Verified  bool   `json:"verified" yaml:"verified"`
}

// Capture describes a new photo; every field is optional.
type Capture struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Category string `json:"category" validate:"omitempty,photocategory"`
}

func (c *Capture) Validate(validate *validator.Validate) error {
	c.Title = core.CleanString(c.Title)
	c.Location = core.CleanString(c.Location)
	c.Category = core.CleanString(c.Category)
	return validate.Struct(c)
}

type Stats struct {
	Total           int `json:"total"`
	TotalXP         int `json:"total_xp"`
	UniqueLocations int `json:"unique_locations"`
}

// InitValidators registers the photo log validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
}

func categoryValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, c := range Categories {
		if c == val {
			return true
		}
	}
	return false
}
