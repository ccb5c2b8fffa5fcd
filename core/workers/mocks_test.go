package workers

import (
	"context"
	"sync"
	"time"

	"recipe-finder-api/core/domain"
)

// mockRecipeAPI is a mock implementation of the RecipeAPI interface
type mockRecipeAPI struct {
	detailsFunc func(ctx context.Context, apiKey string, id int, nutrition bool) (*domain.RecipeDetails, error)
}

func (m *mockRecipeAPI) SearchByIngredients(ctx context.Context, apiKey string, q domain.IngredientQuery) ([]domain.Recipe, error) {
	return nil, nil
}

func (m *mockRecipeAPI) RecipeDetails(ctx context.Context, apiKey string, id int, nutrition bool) (*domain.RecipeDetails, error) {
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, apiKey, id, nutrition)
	}
	return &domain.RecipeDetails{ID: id}, nil
}

func (m *mockRecipeAPI) IngredientSuggestions(ctx context.Context, apiKey, query string, number int) ([]domain.IngredientSuggestion, error) {
	return nil, nil
}

func (m *mockRecipeAPI) ComplexSearch(ctx context.Context, apiKey string, q domain.ComplexQuery) (*domain.SearchPage, error) {
	return nil, nil
}

// mockMetrics counts prefetch outcomes
type mockMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{outcomes: make(map[string]int)}
}

func (m *mockMetrics) CacheLookup(operation string, hit bool)                         {}
func (m *mockMetrics) UpstreamCall(operation, outcome string, duration time.Duration) {}
func (m *mockMetrics) SessionEvent(event string)                                      {}
func (m *mockMetrics) PrefetchJob(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *mockMetrics) count(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[outcome]
}
