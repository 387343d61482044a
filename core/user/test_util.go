package user

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/ecoquest/core"
)

// NewServiceMock returns a Service backed by a fresh in-memory repository that hashes
// passwords at the minimum bcrypt cost, for tests.
// validate must have the user validators registered; a new one is built when it is omitted.
func NewServiceMock(validate ...*validator.Validate) *Service {
	var v *validator.Validate
	if len(validate) > 0 && validate[0] != nil {
		v = validate[0]
	} else {
		translator := core.NewTranslator()
		v = core.NewValidator(translator)
		InitValidators(v, translator)
	}

	svc := NewService(NewMemRepository(), v)
	svc.hashCost = bcrypt.MinCost
	return svc
}
