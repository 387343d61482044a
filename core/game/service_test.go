package game

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

var seedGames = []Game{
	{ID: 1, Title: "Pollution Cleanup Challenge", Type: "Collaborative", AgeGroup: "7-14", Duration: 30, MaxPlayers: 25,
		IsActive: true, Completions: 156, AvgScore: 87, CreatedAt: "2025-01-10"},
	{ID: 2, Title: "Ecosystem Builder", Type: "Strategy", AgeGroup: "15-18", Duration: 45, MaxPlayers: 30,
		IsActive: true, Completions: 89, AvgScore: 92, CreatedAt: "2025-01-08"},
	{ID: 3, Title: "Climate Action Simulator", Type: "Simulation", AgeGroup: "19-21", Duration: 60, MaxPlayers: 20,
		IsActive: false, Completions: 34, AvgScore: 78, CreatedAt: "2025-01-05"},
}

func setup(seed ...Game) *Service {
	now := time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)
	return NewService(records.Deps{Now: func() time.Time { return now }}, seed...)
}

func TestService_Create(t *testing.T) {
	svc := setup(seedGames...)

	g, err := svc.Create(NewGame{Title: "Ocean Rescue", Description: "Save the reef", Topic: "Ocean Conservation"})
	require.NoError(t, err)
	want := Game{
		ID:          4,
		Title:       "Ocean Rescue",
		Description: "Save the reef",
		Type:        "Interactive Quiz",
		Topic:       "Ocean Conservation",
		Difficulty:  "Beginner",
		AgeGroup:    "7-14",
		Duration:    30,
		MaxPlayers:  30,
		IsActive:    true,
		CreatedAt:   "2025-01-22",
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("Create() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, g, svc.List()[0], "games are prepended")

	g, err = svc.Create(NewGame{
		Title: "Tree Quest", Description: "Explore", Topic: "Forest Protection",
		Type: "Adventure", AgeGroup: "22+", Duration: 20, MaxPlayers: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Eco Adventure", g.Type)
	assert.Equal(t, "22+", g.AgeGroup)
	assert.Equal(t, 20, g.Duration)
	assert.Equal(t, 4, g.MaxPlayers)
}

func TestService_Create_invalid(t *testing.T) {
	tests := []struct {
		name      string
		data      NewGame
		wantField string
	}{
		{name: "no title", data: NewGame{Description: "d", Topic: "t"}, wantField: "title"},
		{name: "blank description", data: NewGame{Title: "t", Description: "   ", Topic: "t"}, wantField: "description"},
		{name: "no topic", data: NewGame{Title: "t", Description: "d"}, wantField: "topic"},
		{name: "unknown age group", data: NewGame{Title: "t", Description: "d", Topic: "t", AgeGroup: "99"}, wantField: "age_group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setup(seedGames...)
			_, err := svc.Create(tt.data)

			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Equal(t, tt.wantField, vErrs[0].Field())
			assert.Len(t, svc.List(), 3)
		})
	}
}

func TestService_ToggleRemove(t *testing.T) {
	svc := setup(seedGames...)

	g, err := svc.ToggleActive(1)
	require.NoError(t, err)
	assert.False(t, g.IsActive)

	require.NoError(t, svc.Remove(1))
	assert.True(t, core.IsNotFound(svc.Remove(1)))
	_, err = svc.ToggleActive(1)
	assert.True(t, core.IsNotFound(err))

	g, err = svc.Create(NewGame{Title: "t", Description: "d", Topic: "Biodiversity"})
	require.NoError(t, err)
	assert.Equal(t, 4, g.ID)
}

func TestService_Stats(t *testing.T) {
	svc := setup(seedGames...)
	assert.Equal(t, Stats{Active: 2, TotalCompletions: 279, AvgScore: 86, AvgDuration: 45}, svc.Stats())

	_, err := svc.ToggleActive(3)
	require.NoError(t, err)
	assert.Equal(t, 3, svc.Stats().Active)

	assert.Equal(t, Stats{}, setup().Stats())
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"quiz", "Interactive Quiz"},
		{"Quiz", "Interactive Quiz"},
		{"collaborative", "Team Challenge"},
		{"board-game", "board-game"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.id))
		})
	}
}

func TestCatalogue(t *testing.T) {
	unlocked := func(level int) []string {
		var ids []string
		for _, p := range Catalogue(level) {
			if p.Unlocked {
				ids = append(ids, p.ID)
			}
		}
		return ids
	}

	assert.Len(t, Catalogue(1), 4)
	assert.Equal(t, []string{"element-explorer"}, unlocked(0))
	assert.Equal(t, []string{"element-explorer"}, unlocked(2))
	assert.Equal(t, []string{"element-explorer", "pollution-fighter"}, unlocked(3))
	assert.Equal(t, []string{"element-explorer", "pollution-fighter", "ecosystem-builder"}, unlocked(7))
	assert.Len(t, unlocked(8), 4)

	c := Catalogue(8)
	c[0].Title = "changed"
	assert.Equal(t, "Element Explorer", Catalogue(8)[0].Title)
}
