package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ecoquest/core/game"
	"github.com/trezcool/ecoquest/core/goal"
	"github.com/trezcool/ecoquest/core/leaderboard"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/quiz"
	"github.com/trezcool/ecoquest/core/records"
	"github.com/trezcool/ecoquest/core/student"
	"github.com/trezcool/ecoquest/core/tree"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.Len(t, d.Goals, 3)
	assert.Len(t, d.Trees, 3)
	assert.Len(t, d.Photos, 3)
	assert.Len(t, d.Quizzes, 3)
	assert.Len(t, d.Games, 3)
	assert.Len(t, d.Students, 3)

	assert.Equal(t, goal.StatusCompleted, d.Goals[2].Status)
	assert.Equal(t, "2025-01-25", d.Goals[2].CompletedAt)
	assert.Equal(t, 6.8, d.Trees[2].CO2AbsorbedKg)
	assert.Equal(t, "Central Park, NYC", d.Photos[0].Location)
	assert.Equal(t, "7-14", d.Games[0].AgeGroup)

	require.Len(t, d.QuestionBanks["Climate Change"], 2)
	assert.Equal(t, 2, d.QuestionBanks["Climate Change"][1].CorrectAnswer)
	assert.Equal(t, []string{"Single species population", "Variety of life forms", "Climate patterns", "Soil composition"},
		d.QuestionBanks["Ecosystems"][0].Options)

	require.Contains(t, d.Leaderboard, leaderboard.Weekly)
	weekly := d.Leaderboard[leaderboard.Weekly].You
	require.NotNil(t, weekly)
	require.NotNil(t, weekly.XP)
	assert.Equal(t, 650, *weekly.XP)
	assert.Nil(t, d.Leaderboard[leaderboard.Overall].You.XP)
	assert.Nil(t, d.Leaderboard[leaderboard.Photos].You)

	assert.Equal(t, "Maya Patel", d.Analytics.Overview.TopPerformer)
	assert.Len(t, d.Analytics.Engagement, 4)
	assert.Len(t, d.Analytics.Performance.ByTopic, 4)
	assert.Len(t, d.Analytics.Progress, 5)

	tmpl, ok := d.Content["Climate Change"]["7-14"]["lesson-plan"]
	require.True(t, ok)
	assert.Len(t, tmpl.Activities, 4)
	assert.Equal(t, "What is Climate Change?", d.Content["Climate Change"]["7-14"]["presentation"].Slides[0].Title)

	assert.Equal(t, "ECO2025", d.Overview.Teacher.ClassCode)
	require.Len(t, d.Overview.Teacher.RecentActivity, 4)
	require.NotNil(t, d.Overview.Teacher.RecentActivity[0].Score)
	assert.Equal(t, 95, *d.Overview.Teacher.RecentActivity[0].Score)
	assert.Nil(t, d.Overview.Teacher.RecentActivity[1].Score)
	assert.Len(t, d.Overview.Student.Achievements, 3)
}

func TestLoad_freshCopies(t *testing.T) {
	a := MustLoad()
	b := MustLoad()
	a.Goals[0].Title = "changed"
	assert.Equal(t, "Reduce Plastic Usage", b.Goals[0].Title)
}

// The seeded panels produce the stats the dashboards show on first load.
func TestLoad_seededStats(t *testing.T) {
	d := MustLoad()
	deps := records.Deps{}

	assert.Equal(t, goal.Stats{Completed: 1, Active: 2, XPEarned: 80}, goal.NewService(deps, d.Goals...).Stats())
	trees := tree.NewService(deps, d.Trees...).Stats()
	assert.Equal(t, 3, trees.Total)
	assert.InDelta(t, 13.5, trees.TotalCO2Kg, 1e-9)
	assert.Equal(t, 92, trees.AvgHealth)
	assert.Equal(t, photo.Stats{Total: 3, TotalXP: 90, UniqueLocations: 3}, photo.NewService(deps, d.Photos...).Stats())
	assert.Equal(t, quiz.Stats{Active: 2, TotalCompletions: 53, AvgScore: 85, AvgDuration: 33},
		quiz.NewService(deps, d.QuestionBanks, d.Quizzes...).Stats())
	assert.Equal(t, 279, game.NewService(deps, d.Games...).Stats().TotalCompletions)
	assert.Equal(t, 16, student.NewService(deps, nil, d.Students...).Stats().GoalsCompleted)
}
