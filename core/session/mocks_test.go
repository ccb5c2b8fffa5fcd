package session

import (
	"context"
	"sync"
	"time"
)

// mockRepository is a map-backed Repository with injectable failures
type mockRepository struct {
	mu       sync.Mutex
	sessions map[string]*Session
	saveErr  error
	loads    int
}

func newMockRepository() *mockRepository {
	return &mockRepository{sessions: make(map[string]*Session)}
}

func (m *mockRepository) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *mockRepository) Load(ctx context.Context, id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	s, ok := m.sessions[id]
	return s, ok
}

func (m *mockRepository) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *mockRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// mockMetrics records session events
type mockMetrics struct {
	mu     sync.Mutex
	events []string
}

func (m *mockMetrics) CacheLookup(operation string, hit bool)                         {}
func (m *mockMetrics) UpstreamCall(operation, outcome string, duration time.Duration) {}
func (m *mockMetrics) PrefetchJob(outcome string)                                     {}
func (m *mockMetrics) SessionEvent(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}
