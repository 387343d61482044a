package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/seed"
	"github.com/trezcool/ecoquest/core/user"
)

// Registry tracks the open sessions by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
}

// NewRegistry fills unset options: default record deps (with the photo validators),
// an unlimited rate and the default chat reply delay when ReplyDelay is negative.
func NewRegistry(opts Options) *Registry {
	if opts.Deps.Validate == nil {
		translator := core.NewTranslator()
		opts.Deps.Validate = core.NewValidator(translator)
		photo.InitValidators(opts.Deps.Validate, translator)
	}
	opts.Deps = opts.Deps.WithDefaults()
	if opts.RateLimit == 0 {
		opts.RateLimit = rate.Inf
	}
	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Open starts a new session for usr, seeded with a fresh copy of the mock data.
func (r *Registry) Open(usr user.User) (*Session, error) {
	data, err := seed.Load()
	if err != nil {
		return nil, errors.Wrap(err, "opening session")
	}
	s := newSession(uuid.New().String(), usr, data, r.opts, r.opts.Deps.Now().UTC())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return s, nil
}

// Get returns the open session with the given id and marks it as seen.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(core.ErrNotFound, "session %s", id)
	}
	s.touch(r.opts.Deps.Now().UTC())
	return s, nil
}

// Close ends the session; it reports whether the session was open.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.close()
	}
	return ok
}

// Sweep closes every session not seen for longer than ttl and returns how many it closed.
func (r *Registry) Sweep(ttl time.Duration) int {
	cutoff := r.opts.Deps.Now().UTC().Add(-ttl)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.idleSince(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	return len(expired)
}

// CloseAll ends every open session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
