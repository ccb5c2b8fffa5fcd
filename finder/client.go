// ABOUTME: Main client for the recipe finder library providing sessions without HTTP
// ABOUTME: Each session owns a state store and runs the same search flows as the API

package finder

import (
	"context"
	"io"
	"strings"
	"sync/atomic"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/flows"
	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/core/recipes"
	"recipe-finder-api/core/state"
	"recipe-finder-api/infrastructure/spoonacular"
)

// Client is the main entry point for the recipe finder library
type Client struct {
	flows  *flows.Orchestrator
	deps   interfaces.Dependencies
	config Config
	closed atomic.Bool
}

// Config holds the configuration for the client
type Config struct {
	// Cache for remote results
	Cache interfaces.Cache

	// HTTP client used for the recipe service
	HTTPClient interfaces.HTTPClient

	Logger interfaces.Logger

	// BaseURL of the recipe service, empty means the public endpoint
	BaseURL string

	// DefaultAPIKey seeds every new session
	DefaultAPIKey string

	IncludeNutrition bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	upstream := spoonacular.NewClient(config.BaseURL, deps)
	service := recipes.NewService(upstream, deps)

	return &Client{
		flows:  flows.NewOrchestrator(service, config.Logger, flows.WithNutrition(config.IncludeNutrition)),
		deps:   deps,
		config: config,
	}, nil
}

// Close releases the cache when it holds resources
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if closer, ok := c.config.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// NewSession starts a fresh session with default state
func (c *Client) NewSession() *Session {
	store := state.NewStore()
	if c.config.DefaultAPIKey != "" {
		store.Dispatch(state.SetAPIKey{Key: c.config.DefaultAPIKey})
	}
	return &Session{client: c, store: store}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Cache == nil {
		return NewError(ErrorTypeConfiguration, "cache is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	return nil
}

// Session is one user's working set: ingredients, filters, results and the
// selected recipe. It is safe for concurrent use.
type Session struct {
	client *Client
	store  *state.Store
}

// SetAPIKey sets the credential used by later searches
func (s *Session) SetAPIKey(key string) {
	s.store.Dispatch(state.SetAPIKey{Key: strings.TrimSpace(key)})
}

// AddIngredient appends an ingredient; duplicates are ignored
func (s *Session) AddIngredient(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return NewError(ErrorTypeValidation, "ingredient must not be blank")
	}
	s.store.Dispatch(state.AddIngredient{Value: value})
	return nil
}

// RemoveIngredient removes an ingredient if present
func (s *Session) RemoveIngredient(value string) {
	s.store.Dispatch(state.RemoveIngredient{Value: value})
}

// ClearIngredients empties the ingredient list
func (s *Session) ClearIngredients() {
	s.store.Dispatch(state.ClearIngredients{})
}

// UpdateFilters merges patch into the current filters
func (s *Session) UpdateFilters(patch FilterPatch) {
	s.store.Dispatch(state.UpdateFilters{Patch: patch})
}

// ClearSelection drops the selected recipe
func (s *Session) ClearSelection() {
	s.store.Dispatch(state.SetSelectedRecipe{Recipe: nil})
}

// Search finds recipes using the session's ingredients. With no ingredients
// the result list is emptied and no call is made.
func (s *Session) Search(ctx context.Context) error {
	if s.client.closed.Load() {
		return ErrClientClosed
	}
	return wrapError(s.client.flows.SearchByIngredients(ctx, s.store), flows.MsgSearchFailed)
}

// SearchWithFilters runs a free text search narrowed by the session filters
func (s *Session) SearchWithFilters(ctx context.Context, query string) error {
	if s.client.closed.Load() {
		return ErrClientClosed
	}
	return wrapError(s.client.flows.SearchWithFilters(ctx, s.store, query), flows.MsgSearchFailed)
}

// Details loads one recipe and makes it the selected recipe
func (s *Session) Details(ctx context.Context, id int) (*RecipeDetails, error) {
	if s.client.closed.Load() {
		return nil, ErrClientClosed
	}
	details, err := s.client.flows.RecipeDetails(ctx, s.store, id)
	if err != nil {
		return nil, wrapError(err, flows.MsgDetailsFailed)
	}
	return details, nil
}

// Suggestions returns autocomplete entries for query. Failures yield an
// empty list.
func (s *Session) Suggestions(ctx context.Context, query string) []IngredientSuggestion {
	if s.client.closed.Load() {
		return []domain.IngredientSuggestion{}
	}
	return s.client.flows.IngredientSuggestions(ctx, s.store, query)
}

// State returns a snapshot of the session
func (s *Session) State() State {
	return snapshot(s.store.State())
}
