// Package tree is the student's registry of planted trees.
package tree

import (
	"github.com/trezcool/ecoquest/core/records"
)

type Service struct {
	trees *records.Collection[Tree]
	deps  records.Deps
}

func NewService(deps records.Deps, seed ...Tree) *Service {
	return &Service{
		trees: records.NewCollection(func(t Tree) int { return t.ID }, seed...),
		deps:  deps.WithDefaults(),
	}
}

// Plant validates nt and appends a freshly planted tree to the registry.
func (svc *Service) Plant(nt NewTree) (Tree, error) {
	if err := nt.Validate(svc.deps.Validate); err != nil {
		return Tree{}, err
	}
	notes := nt.Notes
	if notes == "" {
		notes = defaultNotes
	}
	today := svc.deps.Today()

	return svc.trees.Insert(records.Back, func(id int) Tree {
		return Tree{
			ID:            id,
			Name:          nt.Name,
			Species:       nt.Species,
			Planted:       today,
			Location:      nt.Location,
			Health:        100,
			Age:           justPlanted,
			CO2AbsorbedKg: 0,
			WaterGiven:    1,
			Notes:         notes,
			Image:         seedlingIcon,
		}
	}), nil
}

func (svc *Service) List() []Tree {
	return svc.trees.All()
}

func (svc *Service) Stats() Stats {
	trees := svc.trees.All()
	return Stats{
		Total:      len(trees),
		TotalCO2Kg: records.Sum(trees, func(t Tree) float64 { return t.CO2AbsorbedKg }),
		AvgHealth:  records.RoundedAverage(trees, func(t Tree) int { return t.Health }),
	}
}
