// ABOUTME: Store is the dispatch channel for one session's state
// ABOUTME: Serializes transitions and tracks request generations so stale results are dropped

package state

import "sync"

// RequestKind groups requests that supersede each other
type RequestKind string

const (
	// RequestSearch covers ingredient and complex searches
	RequestSearch RequestKind = "search"

	// RequestDetails covers recipe detail lookups
	RequestDetails RequestKind = "details"
)

// Ticket identifies one in-flight request
type Ticket struct {
	Kind       RequestKind
	Generation uint64
}

// Store holds the current state and applies actions to it. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	state    AppState
	next     uint64
	inflight map[RequestKind]uint64
}

// NewStore creates a store holding NewAppState()
func NewStore() *Store {
	return &Store{
		state:    NewAppState(),
		inflight: make(map[RequestKind]uint64),
	}
}

// Dispatch applies the actions in order as one atomic step
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyLocked(actions)
}

// State returns a snapshot that later dispatches will not change
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Begin registers a new request of the given kind, superseding any earlier
// one of the same kind, and applies the start actions atomically with it.
func (s *Store) Begin(kind RequestKind, actions ...Action) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.inflight[kind] = s.next
	s.applyLocked(actions)

	return Ticket{Kind: kind, Generation: s.next}
}

// Finish completes the request identified by t. The actions are applied only
// if t is still the newest request of its kind. Loading is cleared once no
// request of any kind remains in flight. Reports whether the actions applied.
func (s *Store) Finish(t Ticket, actions ...Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.inflight[t.Kind] == t.Generation
	if current {
		delete(s.inflight, t.Kind)
		s.applyLocked(actions)
	}

	if len(s.inflight) == 0 {
		s.state = Reduce(s.state, SetLoading{Loading: false})
	}
	return current
}

// InFlight returns how many request kinds have an outstanding request
func (s *Store) InFlight() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.inflight)
}

func (s *Store) applyLocked(actions []Action) {
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
}
