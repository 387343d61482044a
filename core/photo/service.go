// Package photo is the student's environmental photo log.
package photo

import (
	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

type Service struct {
	photos *records.Collection[Photo]
	deps   records.Deps
}

// NewService expects deps.Validate to have the photo validators registered (see InitValidators);
// when deps.Validate is nil a fully initialised one is built.
func NewService(deps records.Deps, seed ...Photo) *Service {
	if deps.Validate == nil {
		translator := core.NewTranslator()
		deps.Validate = core.NewValidator(translator)
		InitValidators(deps.Validate, translator)
	}
	return &Service{
		photos: records.NewCollection(func(p Photo) int { return p.ID }, seed...),
		deps:   deps.WithDefaults(),
	}
}

// Capture records a new, unverified photo at the front of the log.
// Missing fields get the simulated-camera defaults: a generic title and location,
// a random category and between 15 and 34 XP.
func (svc *Service) Capture(c Capture) (Photo, error) {
	if err := c.Validate(svc.deps.Validate); err != nil {
		return Photo{}, err
	}
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Location == "" {
		c.Location = defaultLocation
	}
	if c.Category == "" {
		c.Category = Categories[svc.deps.IntN(len(Categories))]
	}
	xp := minXP + svc.deps.IntN(maxXP-minXP)
	ts := svc.deps.Now().UTC().Format(TimestampLayout)

	return svc.photos.Insert(records.Front, func(id int) Photo {
		return Photo{
			ID:        id,
			Title:     c.Title,
			Location:  c.Location,
			Timestamp: ts,
			Category:  c.Category,
			XPEarned:  xp,
			Verified:  false,
		}
	}), nil
}

func (svc *Service) List() []Photo {
	return svc.photos.All()
}

func (svc *Service) Stats() Stats {
	photos := svc.photos.All()
	return Stats{
		Total:           len(photos),
		TotalXP:         records.Sum(photos, func(p Photo) int { return p.XPEarned }),
		UniqueLocations: records.Unique(photos, func(p Photo) string { return p.Location }),
	}
}
