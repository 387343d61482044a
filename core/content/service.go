// Package content is the teacher's teaching material generator.
package content

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

type Service struct {
	templates Templates
	validate  *validator.Validate
	now       func() time.Time
}

// NewService builds the generator; validate and now default to a fresh validator and time.Now.
func NewService(templates Templates, validate *validator.Validate, now func() time.Time) *Service {
	if validate == nil {
		validate = core.NewValidator(core.NewTranslator())
	}
	if now == nil {
		now = time.Now
	}
	return &Service{templates: templates, validate: validate, now: now}
}

// Generate returns the template for the request when one exists, otherwise a generic placeholder.
func (svc *Service) Generate(req Request) (Material, error) {
	if err := req.Validate(svc.validate); err != nil {
		return Material{}, err
	}
	ageGroup, _ := core.LookupAgeGroup(req.AgeGroup)
	typ, _ := lookupType(req.Type)

	m := Material{
		Topic:    req.Topic,
		AgeGroup: ageGroup.DisplayName(),
		Type:     typ.Name,
		TypeID:   typ.ID,
	}
	if tmpl, ok := svc.templates[req.Topic][req.AgeGroup][req.Type]; ok {
		m.Title = tmpl.Title
		m.Slides = tmpl.Slides
		m.Objectives = tmpl.Objectives
		m.Materials = tmpl.Materials
		m.Activities = tmpl.Activities
		return m, nil
	}

	m.Title = fmt.Sprintf("%s - %s", req.Topic, typ.Name)
	m.Content = fmt.Sprintf(
		"This would be a customized %s about %s for %s. In a real implementation, "+
			"this would be generated using AI based on educational best practices and age-appropriate content.",
		strings.ToLower(typ.Name), req.Topic, m.AgeGroup,
	)
	return m, nil
}

// Export renders m as a `{topic}-{type}-{date}.json` file.
func (svc *Service) Export(m Material) (filename string, content []byte, err error) {
	typeID := m.TypeID
	if typeID == "" {
		typeID = slug(m.Type)
	}
	return core.Export(slug(m.Topic), typeID, m, svc.now())
}

// slug lower-cases s and joins its letters-and-digits runs with hyphens.
func slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}
