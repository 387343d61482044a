// Package goal is the student's goal tracker.
package goal

import (
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

type Service struct {
	goals *records.Collection[Goal]
	deps  records.Deps
}

func NewService(deps records.Deps, seed ...Goal) *Service {
	return &Service{
		goals: records.NewCollection(func(g Goal) int { return g.ID }, seed...),
		deps:  deps.WithDefaults(),
	}
}

// Create validates ng and appends the new goal to the end of the tracker.
func (svc *Service) Create(ng NewGoal) (Goal, error) {
	if err := ng.Validate(svc.deps.Validate); err != nil {
		return Goal{}, err
	}
	unit := ng.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	xp := ng.Target*5 + svc.deps.IntN(50)
	today := svc.deps.Today()

	return svc.goals.Insert(records.Back, func(id int) Goal {
		return Goal{
			ID:          id,
			Title:       ng.Title,
			Description: ng.Description,
			Category:    ng.Category,
			Target:      ng.Target,
			Current:     0,
			Unit:        unit,
			Deadline:    ng.Deadline,
			Status:      StatusInProgress,
			XPReward:    xp,
			CreatedAt:   today,
		}
	}), nil
}

// UpdateProgress moves the goal's progress by delta, clamped to [0, target].
//
// Reaching the target completes the goal and stamps CompletedAt on that transition only.
// Falling back below the target reopens the goal and clears CompletedAt: no confirmation
// is asked before a completed goal is reopened.
func (svc *Service) UpdateProgress(id, delta int) (Goal, error) {
	today := svc.deps.Today()
	g, ok := svc.goals.Update(id, func(g *Goal) {
		g.Current = clamp(g.Current+delta, 0, g.Target)
		switch {
		case g.Current >= g.Target && !g.IsCompleted():
			g.Status = StatusCompleted
			g.CompletedAt = today
		case g.Current < g.Target:
			g.Status = StatusInProgress
			g.CompletedAt = ""
		}
	})
	if !ok {
		return Goal{}, errors.Wrapf(core.ErrNotFound, "goal %d", id)
	}
	return g, nil
}

// Progress validates pu and applies it with UpdateProgress; a zero delta is rejected.
func (svc *Service) Progress(id int, pu ProgressUpdate) (Goal, error) {
	if err := pu.Validate(svc.deps.Validate); err != nil {
		return Goal{}, err
	}
	return svc.UpdateProgress(id, pu.Delta)
}

func (svc *Service) Get(id int) (Goal, error) {
	g, ok := svc.goals.Get(id)
	if !ok {
		return Goal{}, errors.Wrapf(core.ErrNotFound, "goal %d", id)
	}
	return g, nil
}

func (svc *Service) List() []Goal {
	return svc.goals.All()
}

// Stats is recomputed from the current goals on every call.
func (svc *Service) Stats() Stats {
	goals := svc.goals.All()
	completed := func(g Goal) bool { return g.IsCompleted() }
	return Stats{
		Completed: records.Count(goals, completed),
		Active:    records.Count(goals, func(g Goal) bool { return g.Status == StatusInProgress }),
		XPEarned: records.Sum(goals, func(g Goal) int {
			if completed(g) {
				return g.XPReward
			}
			return 0
		}),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
