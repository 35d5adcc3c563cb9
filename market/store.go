package market

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the application state and serialises transitions. It is
// constructed by the composition root and passed to whatever needs it; the
// package keeps no global instance.
type Store struct {
	mu    sync.RWMutex
	state State
	newID func() string
	now   func() time.Time
}

// New builds a store around an initial state (usually the seed fixture).
// Ids default to UUIDs and timestamps to the wall clock; tests swap both
// for deterministic substitutes.
func New(initial State) *Store {
	return &Store{
		state: initial.Clone(),
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// WithIDGenerator replaces the id source for create actions.
func (s *Store) WithIDGenerator(gen func() string) *Store {
	s.newID = gen
	return s
}

// WithClock replaces the timestamp source.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Dispatch applies one action atomically: either the whole transition lands
// and the next state is installed, or the error is returned and the state
// is untouched. It returns the id of the entity the action touched (the
// generated id for create actions) and a defensive snapshot of the next
// state.
func (s *Store) Dispatch(a Action) (string, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, id, err := Reduce(s.state, a, s.newID, s.now)
	if err != nil {
		return "", State{}, err
	}
	s.state = next
	return id, next.Clone(), nil
}

// Snapshot returns a deep copy of the current state for the read side.
// Derived views recompute from a snapshot on every call.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// CurrentUser resolves the active session, if any.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentUser()
}
