package client

import (
	"sync"

	"github.com/applytrack/applytrack/internal/model"
)

// Store holds the client state and serializes dispatches.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a Store with the zero initial state.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies an action through Reduce.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
}

// Snapshot returns a copy of the current state. The Jobs slice is
// copied so callers cannot mutate the store's view.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	if s.state.Jobs != nil {
		snap.Jobs = make([]*model.Job, len(s.state.Jobs))
		copy(snap.Jobs, s.state.Jobs)
	}
	return snap
}
