// Package quiz is the teacher's quiz creator.
package quiz

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

type Service struct {
	quizzes *records.Collection[Quiz]
	samples map[string][]Question
	deps    records.Deps
}

// NewService builds the quiz creator; samples are the question banks per topic.
func NewService(deps records.Deps, samples map[string][]Question, seed ...Quiz) *Service {
	return &Service{
		quizzes: records.NewCollection(func(q Quiz) int { return q.ID }, seed...),
		samples: samples,
		deps:    deps.WithDefaults(),
	}
}

// Create validates nq and puts the new, active quiz at the front of the list.
func (svc *Service) Create(nq NewQuiz) (Quiz, error) {
	if err := nq.Validate(svc.deps.Validate); err != nil {
		return Quiz{}, err
	}
	duration := nq.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	difficulty := nq.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	today := svc.deps.Today()

	return svc.quizzes.Insert(records.Front, func(id int) Quiz {
		return Quiz{
			ID:          id,
			Title:       nq.Title,
			Description: nq.Description,
			Questions:   len(nq.Questions),
			Duration:    duration,
			Difficulty:  difficulty,
			IsActive:    true,
			Completions: 0,
			AvgScore:    0,
			CreatedAt:   today,
		}
	}), nil
}

// ToggleActive flips whether students can take the quiz. Completion stats are kept.
func (svc *Service) ToggleActive(id int) (Quiz, error) {
	q, ok := svc.quizzes.Update(id, func(q *Quiz) { q.IsActive = !q.IsActive })
	if !ok {
		return Quiz{}, errors.Wrapf(core.ErrNotFound, "quiz %d", id)
	}
	return q, nil
}

func (svc *Service) Remove(id int) error {
	if !svc.quizzes.Remove(id) {
		return errors.Wrapf(core.ErrNotFound, "quiz %d", id)
	}
	return nil
}

func (svc *Service) List() []Quiz {
	return svc.quizzes.All()
}

// SampleQuestions returns a copy of the question bank for topic.
func (svc *Service) SampleQuestions(topic string) ([]Question, bool) {
	qs, ok := svc.samples[topic]
	if !ok || len(qs) == 0 {
		return nil, false
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out, true
}

// SampleTopics lists the topics with a question bank.
func (svc *Service) SampleTopics() []string {
	topics := make([]string, 0, len(svc.samples))
	for topic := range svc.samples {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

func (svc *Service) Stats() Stats {
	quizzes := svc.quizzes.All()
	return Stats{
		Active:           records.Count(quizzes, func(q Quiz) bool { return q.IsActive }),
		TotalCompletions: records.Sum(quizzes, func(q Quiz) int { return q.Completions }),
		AvgScore:         records.RoundedAverage(quizzes, func(q Quiz) int { return q.AvgScore }),
		AvgDuration:      records.RoundedAverage(quizzes, func(q Quiz) int { return q.Duration }),
	}
}
