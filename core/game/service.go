// Package game holds the teacher's game creator and the students' game catalogue.
package game

import (
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

type Service struct {
	games *records.Collection[Game]
	deps  records.Deps
}

func NewService(deps records.Deps, seed ...Game) *Service {
	return &Service{
		games: records.NewCollection(func(g Game) int { return g.ID }, seed...),
		deps:  deps.WithDefaults(),
	}
}

// Create validates ng and puts the new, active game at the front of the list.
func (svc *Service) Create(ng NewGame) (Game, error) {
	if err := ng.Validate(svc.deps.Validate); err != nil {
		return Game{}, err
	}
	if ng.Type == "" {
		ng.Type = DefaultType
	}
	if ng.Difficulty == "" {
		ng.Difficulty = DefaultDifficulty
	}
	if ng.AgeGroup == "" {
		ng.AgeGroup = DefaultAgeGroup
	}
	if ng.Duration == 0 {
		ng.Duration = DefaultDuration
	}
	if ng.MaxPlayers == 0 {
		ng.MaxPlayers = DefaultMaxPlayers
	}
	today := svc.deps.Today()

	return svc.games.Insert(records.Front, func(id int) Game {
		return Game{
			ID:          id,
			Title:       ng.Title,
			Description: ng.Description,
			Type:        TypeName(ng.Type),
			Topic:       ng.Topic,
			Difficulty:  ng.Difficulty,
			AgeGroup:    ng.AgeGroup,
			Duration:    ng.Duration,
			MaxPlayers:  ng.MaxPlayers,
			IsActive:    true,
			CreatedAt:   today,
		}
	}), nil
}

func (svc *Service) ToggleActive(id int) (Game, error) {
	g, ok := svc.games.Update(id, func(g *Game) { g.IsActive = !g.IsActive })
	if !ok {
		return Game{}, errors.Wrapf(core.ErrNotFound, "game %d", id)
	}
	return g, nil
}

func (svc *Service) Remove(id int) error {
	if !svc.games.Remove(id) {
		return errors.Wrapf(core.ErrNotFound, "game %d", id)
	}
	return nil
}

func (svc *Service) List() []Game {
	return svc.games.All()
}

func (svc *Service) Stats() Stats {
	games := svc.games.All()
	return Stats{
		Active:           records.Count(games, func(g Game) bool { return g.IsActive }),
		TotalCompletions: records.Sum(games, func(g Game) int { return g.Completions }),
		AvgScore:         records.RoundedAverage(games, func(g Game) int { return g.AvgScore }),
		AvgDuration:      records.RoundedAverage(games, func(g Game) int { return g.Duration }),
	}
}
