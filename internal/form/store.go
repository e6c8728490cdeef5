package form

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultIdleTimeout is the time after which unused forms are discarded.
const DefaultIdleTimeout = 30 * time.Minute

var ErrFormNotFound = errors.New("there is no open form with this ID")

// Store holds the open forms.
type Store struct {
	mu    sync.Mutex
	forms map[uuid.UUID]*Form
	idle  time.Duration
	now   func() time.Time
}

// NewStore returns an empty store. Forms that have not been used for
// longer than idle are discarded. An idle duration <= 0 disables this.
func NewStore(idle time.Duration) *Store {
	return &Store{
		forms: make(map[uuid.UUID]*Form),
		idle:  idle,
		now:   time.Now,
	}
}

// Add adds the form to the store.
func (s *Store) Add(f *Form) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	f.touch(s.now())
	s.forms[f.ID()] = f
}

// Get returns the form with the ID.
func (s *Store) Get(id uuid.UUID) (*Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	f, ok := s.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}

	f.touch(s.now())
	return f, nil
}

// Remove removes the form from the store.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.forms, id)
}

// Len returns the number of open forms.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	return len(s.forms)
}

// sweep discards idle forms. s.mu must be held.
func (s *Store) sweep() {
	if s.idle <= 0 {
		return
	}

	cutoff := s.now().Add(-s.idle)
	for id, f := range s.forms {
		if f.idleSince(cutoff) {
			log.Debug().Str("form", id.String()).Msg("discarding idle form")
			delete(s.forms, id)
		}
	}
}
