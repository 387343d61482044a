package user

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
)

var ErrEmailExists = errors.New("a user with this email already exists")

type Repository interface {
	CreateUser(usr User) (User, error)
	GetUserByID(id string) (User, error)
	GetUserByEmail(email string) (User, error)
	UpdateUser(usr User) (User, error)
	QueryAllUsers() ([]User, error)
}

// memRepository keeps the mock accounts in memory for the lifetime of the process.
type memRepository struct {
	mutex   sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string // email -> id
}

func NewMemRepository() Repository {
	return &memRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func (repo *memRepository) CreateUser(usr User) (User, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	if _, ok := repo.byEmail[usr.Email]; ok {
		return User{}, ErrEmailExists
	}
	repo.byID[usr.ID] = &usr
	repo.byEmail[usr.Email] = usr.ID
	return usr, nil
}

func (repo *memRepository) GetUserByID(id string) (User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if usr, ok := repo.byID[id]; ok {
		return *usr, nil
	}
	return User{}, errors.Wrapf(core.ErrNotFound, "user %s", id)
}

func (repo *memRepository) GetUserByEmail(email string) (User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if id, ok := repo.byEmail[email]; ok {
		return *repo.byID[id], nil
	}
	return User{}, errors.Wrapf(core.ErrNotFound, "user %s", email)
}

func (repo *memRepository) UpdateUser(usr User) (User, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	orig, ok := repo.byID[usr.ID]
	if !ok {
		return User{}, errors.Wrapf(core.ErrNotFound, "user %s", usr.ID)
	}
	if orig.Email != usr.Email {
		if _, taken := repo.byEmail[usr.Email]; taken {
			return User{}, ErrEmailExists
		}
		delete(repo.byEmail, orig.Email)
		repo.byEmail[usr.Email] = usr.ID
	}
	*orig = usr
	return usr, nil
}

func (repo *memRepository) QueryAllUsers() ([]User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	users := make([]User, 0, len(repo.byID))
	for _, u := range repo.byID {
		users = append(users, *u)
	}
	return users, nil
}
