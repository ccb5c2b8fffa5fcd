package handlers

import (
	"context"
	"sync"
	"time"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/errors"
	"recipe-finder-api/core/session"
	"recipe-finder-api/core/state"
)

// mockSessionService keeps sessions in a map
type mockSessionService struct {
	mu        sync.Mutex
	sessions  map[string]*session.Session
	createErr error
	nextID    int
}

func newMockSessionService() *mockSessionService {
	return &mockSessionService{sessions: make(map[string]*session.Session)}
}

func (m *mockSessionService) Create(ctx context.Context) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	sess := &session.Session{
		ID:        "session-" + string(rune('0'+m.nextID)),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Store:     state.NewStore(),
	}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockSessionService) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	return sess, nil
}

func (m *mockSessionService) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return &errors.NotFoundError{Resource: "session", ID: id}
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// add registers a session with the given state actions applied
func (m *mockSessionService) add(id string, actions ...state.Action) *session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	store := state.NewStore()
	store.Dispatch(actions...)
	sess := &session.Session{ID: id, Store: store}
	m.sessions[id] = sess
	return sess
}

// mockFlows is a mock implementation of the Flows interface
type mockFlows struct {
	searchFunc      func(ctx context.Context, store *state.Store) error
	detailsFunc     func(ctx context.Context, store *state.Store, id int) (*domain.RecipeDetails, error)
	suggestionsFunc func(ctx context.Context, store *state.Store, query string) []domain.IngredientSuggestion
	complexFunc     func(ctx context.Context, store *state.Store, query string) error
}

func (m *mockFlows) SearchByIngredients(ctx context.Context, store *state.Store) error {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, store)
	}
	return nil
}

func (m *mockFlows) RecipeDetails(ctx context.Context, store *state.Store, id int) (*domain.RecipeDetails, error) {
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, store, id)
	}
	return nil, nil
}

func (m *mockFlows) IngredientSuggestions(ctx context.Context, store *state.Store, query string) []domain.IngredientSuggestion {
	if m.suggestionsFunc != nil {
		return m.suggestionsFunc(ctx, store, query)
	}
	return []domain.IngredientSuggestion{}
}

func (m *mockFlows) SearchWithFilters(ctx context.Context, store *state.Store, query string) error {
	if m.complexFunc != nil {
		return m.complexFunc(ctx, store, query)
	}
	return nil
}
