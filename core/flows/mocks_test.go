package flows

import (
	"context"
	"sync"
	"sync/atomic"

	"recipe-finder-api/core/domain"
)

// mockRecipeAPI is a mock implementation of the RecipeAPI interface that counts calls
type mockRecipeAPI struct {
	searchFunc      func(ctx context.Context, apiKey string, q domain.IngredientQuery) ([]domain.Recipe, error)
	detailsFunc     func(ctx context.Context, apiKey string, id int, nutrition bool) (*domain.RecipeDetails, error)
	suggestionsFunc func(ctx context.Context, apiKey, query string, number int) ([]domain.IngredientSuggestion, error)
	complexFunc     func(ctx context.Context, apiKey string, q domain.ComplexQuery) (*domain.SearchPage, error)

	calls atomic.Int32
}

func (m *mockRecipeAPI) SearchByIngredients(ctx context.Context, apiKey string, q domain.IngredientQuery) ([]domain.Recipe, error) {
	m.calls.Add(1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, apiKey, q)
	}
	return []domain.Recipe{}, nil
}

func (m *mockRecipeAPI) RecipeDetails(ctx context.Context, apiKey string, id int, nutrition bool) (*domain.RecipeDetails, error) {
	m.calls.Add(1)
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, apiKey, id, nutrition)
	}
	return &domain.RecipeDetails{ID: id}, nil
}

func (m *mockRecipeAPI) IngredientSuggestions(ctx context.Context, apiKey, query string, number int) ([]domain.IngredientSuggestion, error) {
	m.calls.Add(1)
	if m.suggestionsFunc != nil {
		return m.suggestionsFunc(ctx, apiKey, query, number)
	}
	return []domain.IngredientSuggestion{}, nil
}

func (m *mockRecipeAPI) ComplexSearch(ctx context.Context, apiKey string, q domain.ComplexQuery) (*domain.SearchPage, error) {
	m.calls.Add(1)
	if m.complexFunc != nil {
		return m.complexFunc(ctx, apiKey, q)
	}
	return &domain.SearchPage{Results: []domain.Recipe{}}, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

// mockPrefetcher records prefetch requests
type mockPrefetcher struct {
	apiKey    string
	ids       []int
	nutrition bool
	calls     int
}

func (m *mockPrefetcher) Prefetch(apiKey string, recipeIDs []int, includeNutrition bool) {
	m.calls++
	m.apiKey = apiKey
	m.ids = recipeIDs
	m.nutrition = includeNutrition
}
