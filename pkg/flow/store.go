package flow

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dynhelp/pkg/observability"
)

// Store owns the current snapshot. It is the only way state changes.
// All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	cur     *State
	initial *State
	version uint64
	logger  *log.Logger
}

// NewStore creates a store starting at initial. A nil initial state is an
// empty, disabled one.
func NewStore(initial *State, logger *log.Logger) *Store {
	if initial == nil {
		initial = NewState(false)
	}
	return &Store{
		cur:     initial,
		initial: initial,
		logger:  observability.Logger(logger).WithPrefix("flow"),
	}
}

// Snapshot returns the current state. The returned value never changes;
// later dispatches produce new snapshots.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Version increments on every successful dispatch.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Dispatch applies actions in order as one transition. If any action fails
// nothing is applied and the error is returned.
func (s *Store) Dispatch(actions ...Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur.clone()
	for _, a := range actions {
		if _, ok := a.(Reset); ok {
			next = s.initial.clone()
			s.logger.Debug("dispatch", "action", a)
			continue
		}
		if err := a.apply(next); err != nil {
			s.logger.Debug("rejected", "action", a, "err", err)
			return err
		}
		s.logger.Debug("dispatch", "action", a)
	}
	s.cur = next
	s.version++
	return nil
}

// Reset returns to the state the store was created with, or last loaded.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = s.initial
	s.version++
}

// Replace loads a new state and makes it the reset point.
func (s *Store) Replace(next *State) {
	if next == nil {
		next = NewState(false)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = next
	s.initial = next
	s.version++
}
