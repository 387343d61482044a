// Package user holds the mock accounts and the student onboarding steps.
package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/ecoquest/core"
)

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errWrongRole          = errors.New("this account has a different role")
	errAvatarSet          = errors.New("avatar already selected")
	errAgeGroupSet        = errors.New("age group already selected")
	errNotStudent         = errors.New("only students go through onboarding")
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	hashCost int
}

// NewService expects validate to have the user validators registered (see InitValidators).
func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

// Login signs in the account registered under l.Email, or signs up a new one.
// New students start at level 1 with no XP. created reports a sign up.
func (svc *Service) Login(l Login) (usr User, created bool, err error) {
	if err := l.Validate(svc.validate); err != nil {
		return User{}, false, err
	}

	now := svc.now().UTC()
	usr, err = svc.repo.GetUserByEmail(l.Email)
	switch {
	case err == nil:
		if usr.Role != l.Role {
			return User{}, false, core.NewFieldError("role", errWrongRole)
		}
		if err := usr.CheckPassword(l.Password); err != nil {
			return User{}, false, core.NewValidationError(errInvalidCredentials)
		}
		usr.LastLogin = now
		usr, err = svc.repo.UpdateUser(usr)
		return usr, false, err
	case !core.IsNotFound(err):
		return User{}, false, err
	}

	usr, err = svc.signUp(l, now)
	return usr, err == nil, err
}

func (svc *Service) signUp(l Login, now time.Time) (User, error) {
	name := l.defaultName()
	if err := svc.validate.Struct(signUp{Name: name, Email: l.Email, Password: l.Password}); err != nil {
		return User{}, err
	}

	usr := User{
		ID:          uuid.New().String(),
		Email:       l.Email,
		Name:        name,
		Role:        l.Role,
		TeacherCode: l.TeacherCode,
		CreatedAt:   now,
		LastLogin:   now,
	}
	if usr.IsStudent() {
		usr.Level = 1
		usr.XP = 0
	}
	if err := usr.setPassword(l.Password, svc.hashCost); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr, err := svc.repo.CreateUser(usr)
	if errors.Cause(err) == ErrEmailExists {
		return User{}, core.NewFieldError("email", err)
	}
	return usr, err
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

// SetAvatar records the student's element; it can only be chosen once.
func (svc *Service) SetAvatar(id string, sa SetAvatar) (User, error) {
	if err := sa.Validate(svc.validate); err != nil {
		return User{}, err
	}
	return svc.onboard(id, func(usr *User) error {
		if usr.Avatar != "" {
			return core.NewFieldError("avatar", errAvatarSet)
		}
		usr.Avatar = sa.Avatar
		return nil
	})
}

// SetAgeGroup records the student's age group; it can only be chosen once.
func (svc *Service) SetAgeGroup(id string, sg SetAgeGroup) (User, error) {
	if err := sg.Validate(svc.validate); err != nil {
		return User{}, err
	}
	return svc.onboard(id, func(usr *User) error {
		if usr.AgeGroup != "" {
			return core.NewFieldError("age_group", errAgeGroupSet)
		}
		usr.AgeGroup = sg.AgeGroup
		return nil
	})
}

func (svc *Service) onboard(id string, step func(*User) error) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	if !usr.IsStudent() {
		return User{}, core.NewValidationError(errNotStudent)
	}
	if err := step(&usr); err != nil {
		return User{}, err
	}
	return svc.repo.UpdateUser(usr)
}
