package goal

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

var seedGoals = []Goal{
	{ID: 1, Title: "Reduce Plastic Usage", Category: "Waste Reduction", Target: 30, Current: 18, Unit: "days",
		Deadline: "2025-02-15", Status: StatusInProgress, XPReward: 100, CreatedAt: "2025-01-01"},
	{ID: 2, Title: "Document Water Pollution", Category: "Documentation", Target: 10, Current: 7, Unit: "photos",
		Deadline: "2025-02-01", Status: StatusInProgress, XPReward: 75, CreatedAt: "2025-01-10"},
	{ID: 3, Title: "Energy Conservation", Category: "Energy", Target: 15, Current: 15, Unit: "days",
		Deadline: "2025-01-30", Status: StatusCompleted, XPReward: 80, CreatedAt: "2025-01-01", CompletedAt: "2025-01-25"},
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func setup(t *testing.T, seed ...Goal) (*Service, *clock) {
	t.Helper()
	clk := &clock{now: time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)}
	svc := NewService(records.Deps{
		Validate: core.NewValidator(core.NewTranslator()),
		Now:      clk.Now,
		IntN:     func(n int) int { return n - 1 },
	}, seed...)
	return svc, clk
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t, seedGoals...)

	g, err := svc.Create(NewGoal{
		Title:    "  Bike to school ",
		Category: "Transportation",
		Target:   20,
		Deadline: "2025-03-01",
	})
	require.NoError(t, err)

	want := Goal{
		ID:        4,
		Title:     "Bike to school",
		Category:  "Transportation",
		Target:    20,
		Current:   0,
		Unit:      DefaultUnit,
		Deadline:  "2025-03-01",
		Status:    StatusInProgress,
		XPReward:  20*5 + 49,
		CreatedAt: "2025-01-22",
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("Create() mismatch (-want +got):\n%s", diff)
	}

	goals := svc.List()
	require.Len(t, goals, 4)
	assert.Equal(t, g, goals[3], "goals are appended to the end")
}

func TestService_Create_invalid(t *testing.T) {
	tests := []struct {
		name      string
		data      NewGoal
		wantField string
	}{
		{name: "no title", data: NewGoal{Category: "Education", Target: 1, Deadline: "2025-03-01"}, wantField: "title"},
		{name: "blank title", data: NewGoal{Title: "   ", Category: "Education", Target: 1, Deadline: "2025-03-01"}, wantField: "title"},
		{name: "no category", data: NewGoal{Title: "t", Target: 1, Deadline: "2025-03-01"}, wantField: "category"},
		{name: "no target", data: NewGoal{Title: "t", Category: "c", Deadline: "2025-03-01"}, wantField: "target"},
		{name: "negative target", data: NewGoal{Title: "t", Category: "c", Target: -3, Deadline: "2025-03-01"}, wantField: "target"},
		{name: "no deadline", data: NewGoal{Title: "t", Category: "c", Target: 1}, wantField: "deadline"},
		{name: "bad deadline", data: NewGoal{Title: "t", Category: "c", Target: 1, Deadline: "next week"}, wantField: "deadline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setup(t, seedGoals...)

			_, err := svc.Create(tt.data)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Equal(t, tt.wantField, vErrs[0].Field())

			assert.Len(t, svc.List(), len(seedGoals), "nothing is inserted")
			assert.Equal(t, 4, svc.goals.NextID())
		})
	}
}

func TestService_UpdateProgress_completesOnce(t *testing.T) {
	svc, clk := setup(t, Goal{ID: 1, Title: "t", Target: 10, Current: 8, Status: StatusInProgress})

	g, err := svc.UpdateProgress(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Current, "clamped to target")
	assert.Equal(t, StatusCompleted, g.Status)
	assert.Equal(t, "2025-01-22", g.CompletedAt)

	clk.now = clk.now.Add(48 * time.Hour)
	g, err = svc.UpdateProgress(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Current)
	assert.Equal(t, StatusCompleted, g.Status)
	assert.Equal(t, "2025-01-22", g.CompletedAt, "re-completion does not re-stamp")
}

func TestService_UpdateProgress_floorsAtZero(t *testing.T) {
	svc, _ := setup(t, Goal{ID: 1, Title: "t", Target: 10, Current: 0, Status: StatusInProgress})

	g, err := svc.UpdateProgress(1, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Current)
	assert.Equal(t, StatusInProgress, g.Status)
	assert.Empty(t, g.CompletedAt)
}

func TestService_UpdateProgress_reopens(t *testing.T) {
	svc, clk := setup(t, seedGoals...)

	g, err := svc.UpdateProgress(3, -1)
	require.NoError(t, err)
	assert.Equal(t, 14, g.Current)
	assert.Equal(t, StatusInProgress, g.Status)
	assert.Empty(t, g.CompletedAt)

	clk.now = clk.now.Add(24 * time.Hour)
	g, err = svc.UpdateProgress(3, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, g.Status)
	assert.Equal(t, "2025-01-23", g.CompletedAt)
}

func TestService_UpdateProgress_notFound(t *testing.T) {
	svc, _ := setup(t, seedGoals...)
	before := svc.List()

	_, err := svc.UpdateProgress(42, 1)
	assert.True(t, core.IsNotFound(err))
	assert.Equal(t, before, svc.List())
}

func TestService_Stats(t *testing.T) {
	svc, _ := setup(t, seedGoals...)

	assert.Equal(t, Stats{Completed: 1, Active: 2, XPEarned: 80}, svc.Stats())

	_, err := svc.UpdateProgress(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Stats{Completed: 2, Active: 1, XPEarned: 155}, svc.Stats(), "reflects the latest mutation")

	_, err = svc.Create(NewGoal{Title: "t", Category: "c", Target: 2, Deadline: "2025-03-01"})
	require.NoError(t, err)
	first := svc.Stats()
	assert.Equal(t, first, svc.Stats(), "recomputing without a mutation is stable")
	assert.Equal(t, Stats{Completed: 2, Active: 2, XPEarned: 155}, first)
}

func TestService_Stats_empty(t *testing.T) {
	svc, _ := setup(t)
	assert.Equal(t, Stats{}, svc.Stats())
}

func TestGoal_Progress(t *testing.T) {
	assert.Equal(t, 60, seedGoals[0].Progress())
	assert.Equal(t, 70, seedGoals[1].Progress())
	assert.Equal(t, 100, seedGoals[2].Progress())
	assert.Equal(t, 0, Goal{}.Progress())
}

func TestService_Progress(t *testing.T) {
	svc, _ := setup(t, Goal{ID: 1, Title: "t", Target: 10, Current: 2, Status: StatusInProgress})

	g, err := svc.Progress(1, ProgressUpdate{Delta: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Current)

	_, err = svc.Progress(1, ProgressUpdate{})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "delta", vErrs[0].Field())
	assert.Equal(t, "required", vErrs[0].Tag())

	g, err = svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Current, "rejected update leaves the goal unchanged")

	_, err = svc.Progress(99, ProgressUpdate{Delta: 1})
	assert.True(t, core.IsNotFound(err))
}
