// Package seed provides the mock data set a new session is seeded with.
package seed

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/ecoquest/core/analytics"
	"github.com/trezcool/ecoquest/core/content"
	"github.com/trezcool/ecoquest/core/game"
	"github.com/trezcool/ecoquest/core/goal"
	"github.com/trezcool/ecoquest/core/leaderboard"
	"github.com/trezcool/ecoquest/core/overview"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/quiz"
	"github.com/trezcool/ecoquest/core/student"
	"github.com/trezcool/ecoquest/core/tree"
)

//go:embed data.yaml
var raw []byte

type Data struct {
	Goals         []goal.Goal                  `yaml:"goals"`
	Trees         []tree.Tree                  `yaml:"trees"`
	Photos        []photo.Photo                `yaml:"photos"`
	Quizzes       []quiz.Quiz                  `yaml:"quizzes"`
	QuestionBanks map[string][]quiz.Question   `yaml:"questionBanks"`
	Games         []game.Game                  `yaml:"games"`
	Students      []student.Student            `yaml:"students"`
	Leaderboard   map[string]leaderboard.Board `yaml:"leaderboard"`
	Analytics     analytics.Data               `yaml:"analytics"`
	Content       content.Templates            `yaml:"content"`
	Overview      overview.Mock                `yaml:"overview"`
}

// Load decodes a fresh copy of the embedded data set; callers own the result.
func Load() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, errors.Wrap(err, "decoding seed data")
	}
	return &d, nil
}

// MustLoad is Load for data known to be valid at build time.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}
