// ABOUTME: Recipe service wraps the remote recipe API with caching and call collapsing
// ABOUTME: Provides cache-first lookups that never store or share credentials

package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"recipe-finder-api/core/domain"
	coreerrors "recipe-finder-api/core/errors"
	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/pkg/featureflags"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultResultTTL is how long searches and suggestions are cached
	DefaultResultTTL = time.Hour

	// DefaultDetailsTTL is how long recipe details are cached
	DefaultDetailsTTL = 24 * time.Hour
)

// Service implements interfaces.RecipeAPI on top of another RecipeAPI
type Service struct {
	upstream   interfaces.RecipeAPI
	deps       interfaces.Dependencies
	flags      featureflags.Manager
	resultTTL  time.Duration
	detailsTTL time.Duration
	group      singleflight.Group
}

// Option configures a Service
type Option func(*Service)

// WithTTLs sets cache lifetimes for results and details
func WithTTLs(result, details time.Duration) Option {
	return func(s *Service) {
		s.resultTTL = result
		s.detailsTTL = details
	}
}

// WithFlags lets the cache_enabled flag bypass the cache at runtime
func WithFlags(flags featureflags.Manager) Option {
	return func(s *Service) {
		s.flags = flags
	}
}

// NewService creates a new recipe service instance
func NewService(upstream interfaces.RecipeAPI, deps interfaces.Dependencies, opts ...Option) *Service {
	s := &Service{
		upstream:   upstream,
		deps:       deps,
		resultTTL:  DefaultResultTTL,
		detailsTTL: DefaultDetailsTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ interfaces.RecipeAPI = (*Service)(nil)

// SearchByIngredients returns recipes that use the given ingredients
func (s *Service) SearchByIngredients(ctx context.Context, apiKey string, query domain.IngredientQuery) ([]domain.Recipe, error) {
	return lookup(ctx, s, opSearchByIngredients, ingredientsKey(query), apiKey, s.resultTTL,
		func(ctx context.Context) ([]domain.Recipe, error) {
			return s.upstream.SearchByIngredients(ctx, apiKey, query)
		})
}

// RecipeDetails returns the full record for one recipe
func (s *Service) RecipeDetails(ctx context.Context, apiKey string, id int, includeNutrition bool) (*domain.RecipeDetails, error) {
	return lookup(ctx, s, opRecipeDetails, detailsKey(id, includeNutrition), apiKey, s.detailsTTL,
		func(ctx context.Context) (*domain.RecipeDetails, error) {
			return s.upstream.RecipeDetails(ctx, apiKey, id, includeNutrition)
		})
}

// IngredientSuggestions returns autocomplete hits for a partial ingredient name
func (s *Service) IngredientSuggestions(ctx context.Context, apiKey string, query string, number int) ([]domain.IngredientSuggestion, error) {
	return lookup(ctx, s, opIngredientSuggestions, suggestionsKey(query, number), apiKey, s.resultTTL,
		func(ctx context.Context) ([]domain.IngredientSuggestion, error) {
			return s.upstream.IngredientSuggestions(ctx, apiKey, query, number)
		})
}

// ComplexSearch returns one page of free text search results
func (s *Service) ComplexSearch(ctx context.Context, apiKey string, query domain.ComplexQuery) (*domain.SearchPage, error) {
	return lookup(ctx, s, opComplexSearch, complexKey(query), apiKey, s.resultTTL,
		func(ctx context.Context) (*domain.SearchPage, error) {
			return s.upstream.ComplexSearch(ctx, apiKey, query)
		})
}

// lookup serves from the caller's credential scoped cache when possible.
// Otherwise it fetches once per request key and credential, storing only
// successful results. The shared fetch is detached from any one caller, so
// each caller stops waiting on its own context without failing the others.
func lookup[T any](ctx context.Context, s *Service, op, requestKey, apiKey string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	useCache := s.cacheEnabled(ctx)
	cacheKey := scopedKey(requestKey, apiKey)

	if useCache {
		if v, ok := getCached[T](ctx, s, op, cacheKey); ok {
			return v, nil
		}
	}

	fetchCtx := context.WithoutCancel(ctx)
	flightKey := requestKey + "|" + apiKey
	ch := s.group.DoChan(flightKey, func() (interface{}, error) {
		v, err := fetch(fetchCtx)
		if err != nil {
			return v, err
		}
		if useCache {
			s.setCached(fetchCtx, op, cacheKey, v, ttl)
		}
		return v, nil
	})

	select {
	case res := <-ch:
		v, _ := res.Val.(T)
		return v, res.Err
	case <-ctx.Done():
		return zero, &coreerrors.TransportError{Operation: op, Err: ctx.Err()}
	}
}

func getCached[T any](ctx context.Context, s *Service, op, key string) (T, bool) {
	var zero T

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.warn("Cache read failed", op, key, err)
		}
		s.recordLookup(op, false)
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.warn("Discarding undecodable cache entry", op, key, err)
		_ = s.deps.Cache.Delete(ctx, key)
		s.recordLookup(op, false)
		return zero, false
	}

	s.recordLookup(op, true)
	return v, true
}

func (s *Service) setCached(ctx context.Context, op, key string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		s.warn("Failed to encode cache entry", op, key, err)
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, ttl); err != nil {
		s.warn("Cache write failed", op, key, err)
	}
}

func (s *Service) cacheEnabled(ctx context.Context) bool {
	if s.deps.Cache == nil {
		return false
	}
	if s.flags == nil {
		return true
	}
	return s.flags.IsEnabled(ctx, featureflags.CacheEnabled)
}

func (s *Service) recordLookup(op string, hit bool) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.CacheLookup(op, hit)
	}
}

func (s *Service) warn(msg, op, key string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"operation": op,
		"key":       key,
		"error":     err.Error(),
	})
}
