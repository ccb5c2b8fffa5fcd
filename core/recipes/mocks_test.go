package recipes

import (
	"context"
	"sync"
	"time"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/interfaces"
)

// mockRecipeAPI is a mock implementation of the RecipeAPI interface
type mockRecipeAPI struct {
	searchFunc      func(ctx context.Context, apiKey string, q domain.IngredientQuery) ([]domain.Recipe, error)
	detailsFunc     func(ctx context.Context, apiKey string, id int, nutrition bool) (*domain.RecipeDetails, error)
	suggestionsFunc func(ctx context.Context, apiKey, query string, number int) ([]domain.IngredientSuggestion, error)
	complexFunc     func(ctx context.Context, apiKey string, q domain.ComplexQuery) (*domain.SearchPage, error)
}

func (m *mockRecipeAPI) SearchByIngredients(ctx context.Context, apiKey string, q domain.IngredientQuery) ([]domain.Recipe, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, apiKey, q)
	}
	return []domain.Recipe{}, nil
}

func (m *mockRecipeAPI) RecipeDetails(ctx context.Context, apiKey string, id int, nutrition bool) (*domain.RecipeDetails, error) {
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, apiKey, id, nutrition)
	}
	return &domain.RecipeDetails{ID: id}, nil
}

func (m *mockRecipeAPI) IngredientSuggestions(ctx context.Context, apiKey, query string, number int) ([]domain.IngredientSuggestion, error) {
	if m.suggestionsFunc != nil {
		return m.suggestionsFunc(ctx, apiKey, query, number)
	}
	return []domain.IngredientSuggestion{}, nil
}

func (m *mockRecipeAPI) ComplexSearch(ctx context.Context, apiKey string, q domain.ComplexQuery) (*domain.SearchPage, error) {
	if m.complexFunc != nil {
		return m.complexFunc(ctx, apiKey, q)
	}
	return &domain.SearchPage{Results: []domain.Recipe{}}, nil
}

// mapCache is an in-memory Cache that records TTLs
type mapCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	deleted []string
}

func newMapCache() *mapCache {
	return &mapCache{
		items: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.items[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *mapCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.items))
	for k := range c.items {
		out = append(out, k)
	}
	return out
}

// mockLogger records warnings
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockMetrics counts cache lookups
type mockMetrics struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (m *mockMetrics) CacheLookup(operation string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}
func (m *mockMetrics) UpstreamCall(operation, outcome string, duration time.Duration) {}
func (m *mockMetrics) SessionEvent(event string)                                      {}
func (m *mockMetrics) PrefetchJob(outcome string)                                     {}
