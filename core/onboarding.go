package core

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

type (
	// Element is an avatar a student picks during onboarding.
	Element struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Power       string `json:"power"`
		Description string `json:"description"`
	}

	// AgeGroup tunes dashboards and generated content to a learner's age.
	AgeGroup struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		AgeRange    string   `json:"age_range"`
		Level       string   `json:"level"`
		Theme       string   `json:"theme"` // dashboard title
		Description string   `json:"description"`
		Features    []string `json:"features"`
	}
)

var (
	Elements = []Element{
		{
			ID: "water", Name: "Water", Power: "Adaptation & Healing",
			Description: "Masters of flow and adaptation. Water avatars can heal the environment, purify polluted areas, " +
				"and find solutions that work around obstacles.",
		},
		{
			ID: "fire", Name: "Fire", Power: "Transformation & Energy",
			Description: "Champions of change and renewable energy. Fire avatars can transform waste into energy, " +
				"drive environmental innovations, and inspire action.",
		},
		{
			ID: "earth", Name: "Earth", Power: "Growth & Stability",
			Description: "Guardians of soil and forests. Earth avatars excel at reforestation, sustainable agriculture, " +
				"and protecting biodiversity.",
		},
		{
			ID: "air", Name: "Air", Power: "Freedom & Connection",
			Description: "Protectors of atmosphere and climate. Air avatars fight air pollution, promote clean transportation, " +
				"and connect communities globally.",
		},
	}

	AgeGroups = []AgeGroup{
		{
			ID: "7-14", Name: "Young Explorers", AgeRange: "7-14 years", Level: "Elementary",
			Theme:       "Young Explorer Dashboard",
			Description: "Fun games, colorful visuals, and simple environmental concepts. Perfect for curious minds just starting their eco-journey!",
			Features:    []string{"Interactive Games", "Fun Animations", "Simple Quizzes", "Storybook Learning"},
		},
		{
			ID: "15-18", Name: "Eco Warriors", AgeRange: "15-18 years", Level: "High School",
			Theme:       "Eco Warrior Command Center",
			Description: "Deeper environmental science, real-world projects, and peer challenges. Ready to make a real impact!",
			Features:    []string{"Science Projects", "Peer Competitions", "Real Data Analysis", "Community Challenges"},
		},
		{
			ID: "19-21", Name: "Green Pioneers", AgeRange: "19-21 years", Level: "College",
			Theme:       "Green Pioneer Hub",
			Description: "Advanced concepts, research opportunities, and leadership roles in environmental conservation.",
			Features:    []string{"Research Projects", "Leadership Roles", "Advanced Analytics", "Mentorship Programs"},
		},
		{
			ID: "22+", Name: "Environmental Leaders", AgeRange: "22+ years", Level: "Adult",
			Theme:       "Environmental Leader Portal",
			Description: "Professional development, career integration, and advanced environmental management.",
			Features:    []string{"Career Integration", "Professional Tools", "Industry Insights", "Policy Analysis"},
		},
		{
			ID: "vocational", Name: "Skill Builders", AgeRange: "Vocational", Level: "Professional",
			Theme:       "Skill Builder Workshop",
			Description: "Hands-on training, practical skills, and job-oriented environmental education.",
			Features:    []string{"Hands-on Training", "Skill Certifications", "Job Preparation", "Industry Connect"},
		},
	}

	// DefaultTheme is the dashboard title of a student without an age group.
	DefaultTheme = "Dashboard"

	avatarTag  = "avatar"
	avatarText = "must be one of water, fire, earth or air"

	ageGroupTag  = "agegroup"
	ageGroupText = "must be one of 7-14, 15-18, 19-21, 22+ or vocational"
)

func LookupElement(id string) (Element, bool) {
	for _, e := range Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

func LookupAgeGroup(id string) (AgeGroup, bool) {
	for _, g := range AgeGroups {
		if g.ID == id {
			return g, true
		}
	}
	return AgeGroup{}, false
}

// DisplayName is how content and reports label the group, e.g. "Young Explorers (7-14)".
func (g AgeGroup) DisplayName() string {
	if g.ID == "vocational" {
		return g.Name + " (Vocational)"
	}
	return g.Name + " (" + g.ID + ")"
}

func registerOnboardingValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(avatarTag, func(fl validator.FieldLevel) bool {
		_, ok := LookupElement(fl.Field().String())
		return ok
	})
	RegisterCustomTranslation(validate, translator, avatarTag, avatarText)

	_ = validate.RegisterValidation(ageGroupTag, func(fl validator.FieldLevel) bool {
		_, ok := LookupAgeGroup(fl.Field().String())
		return ok
	})
	RegisterCustomTranslation(validate, translator, ageGroupTag, ageGroupText)
}
