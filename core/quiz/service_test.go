package quiz

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

var (
	seedQuizzes = []Quiz{
		{ID: 1, Title: "Climate Change Basics", Questions: 15, Duration: 30, Difficulty: "Beginner",
			IsActive: true, Completions: 23, AvgScore: 85, CreatedAt: "2025-01-10"},
		{ID: 2, Title: "Renewable Energy Sources", Questions: 12, Duration: 25, Difficulty: "Intermediate",
			IsActive: true, Completions: 18, AvgScore: 78, CreatedAt: "2025-01-08"},
		{ID: 3, Title: "Ecosystem Balance", Questions: 20, Duration: 45, Difficulty: "Advanced",
			IsActive: false, Completions: 12, AvgScore: 92, CreatedAt: "2025-01-05"},
	}

	samples = map[string][]Question{
		"Ecosystems": {
			{Question: "What is biodiversity?", Options: []string{"Single species population", "Variety of life forms"}, CorrectAnswer: 1},
		},
	}
)

func setup(seed ...Quiz) *Service {
	now := time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)
	return NewService(records.Deps{Now: func() time.Time { return now }}, samples, seed...)
}

func TestService_Create(t *testing.T) {
	svc := setup(seedQuizzes...)

	q, err := svc.Create(NewQuiz{
		Title:     "Water Cycle",
		Questions: []Question{{Question: "Where does rain come from?"}, {Question: "What is evaporation?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, Quiz{
		ID:          4,
		Title:       "Water Cycle",
		Questions:   2,
		Duration:    DefaultDuration,
		Difficulty:  DefaultDifficulty,
		IsActive:    true,
		Completions: 0,
		AvgScore:    0,
		CreatedAt:   "2025-01-22",
	}, q)
	assert.Equal(t, q, svc.List()[0], "quizzes are prepended")

	q, err = svc.Create(NewQuiz{Title: "Soil", Duration: 15, Difficulty: "Advanced"})
	require.NoError(t, err)
	assert.Equal(t, 5, q.ID)
	assert.Equal(t, 15, q.Duration)
	assert.Equal(t, "Advanced", q.Difficulty)
	assert.Equal(t, 0, q.Questions)
}

func TestService_Create_invalid(t *testing.T) {
	tests := []struct {
		name      string
		data      NewQuiz
		wantField string
	}{
		{name: "no title", data: NewQuiz{Questions: []Question{{Question: "q"}}}, wantField: "title"},
		{name: "blank question", data: NewQuiz{Title: "t", Questions: []Question{{Question: "q"}, {Question: "  "}}}, wantField: "question"},
		{name: "unknown difficulty", data: NewQuiz{Title: "t", Difficulty: "Expert"}, wantField: "difficulty"},
		{name: "negative duration", data: NewQuiz{Title: "t", Duration: -5}, wantField: "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setup(seedQuizzes...)
			_, err := svc.Create(tt.data)

			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Equal(t, tt.wantField, vErrs[0].Field())
			assert.Len(t, svc.List(), 3)
		})
	}
}

func TestService_ToggleActive(t *testing.T) {
	svc := setup(seedQuizzes...)

	q, err := svc.ToggleActive(3)
	require.NoError(t, err)
	assert.True(t, q.IsActive)
	assert.Equal(t, 12, q.Completions, "completion stats are kept")

	q, err = svc.ToggleActive(3)
	require.NoError(t, err)
	assert.False(t, q.IsActive)

	_, err = svc.ToggleActive(99)
	assert.True(t, core.IsNotFound(err))
}

func TestService_Remove(t *testing.T) {
	svc := setup(seedQuizzes...)

	require.NoError(t, svc.Remove(2))
	quizzes := svc.List()
	require.Len(t, quizzes, 2)
	assert.Equal(t, 1, quizzes[0].ID)
	assert.Equal(t, 3, quizzes[1].ID, "remaining ids are not renumbered")

	assert.True(t, core.IsNotFound(svc.Remove(2)))

	q, err := svc.Create(NewQuiz{Title: "After removal"})
	require.NoError(t, err)
	assert.Equal(t, 4, q.ID, "removed ids are never reused")
}

func TestService_SampleQuestions(t *testing.T) {
	svc := setup()

	qs, ok := svc.SampleQuestions("Ecosystems")
	require.True(t, ok)
	require.Len(t, qs, 1)
	assert.Equal(t, "What is biodiversity?", qs[0].Question)

	qs[0].Options[0] = "changed"
	again, _ := svc.SampleQuestions("Ecosystems")
	assert.Equal(t, "Single species population", again[0].Options[0], "banks are copied")

	_, ok = svc.SampleQuestions("Volcanoes")
	assert.False(t, ok)

	assert.Equal(t, []string{"Ecosystems"}, svc.SampleTopics())
}

func TestService_Stats(t *testing.T) {
	svc := setup(seedQuizzes...)
	assert.Equal(t, Stats{Active: 2, TotalCompletions: 53, AvgScore: 85, AvgDuration: 33}, svc.Stats())

	_, err := svc.ToggleActive(1)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Stats().Active)

	_, err = svc.Create(NewQuiz{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, Stats{Active: 2, TotalCompletions: 53, AvgScore: 64, AvgDuration: 33}, svc.Stats())

	assert.Equal(t, Stats{}, setup().Stats())
}
