package records

import (
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ecoquest/core"
)

// Deps are what every panel service is built with besides its seed records.
type Deps struct {
	Validate *validator.Validate
	Now      func() time.Time // defaults to time.Now
	IntN     func(n int) int  // random int in [0, n); defaults to math/rand
}

// WithDefaults fills in whatever was left unset.
func (d Deps) WithDefaults() Deps {
	if d.Validate == nil {
		d.Validate = core.NewValidator(core.NewTranslator())
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.IntN == nil {
		d.IntN = rand.Intn
	}
	return d
}

// Today is the current UTC calendar date, e.g. "2025-01-22".
func (d Deps) Today() string {
	return core.FormatDate(d.Now())
}
