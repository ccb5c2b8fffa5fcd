// ABOUTME: Orchestrator runs the user-facing recipe flows against a session store
// ABOUTME: Checks preconditions, calls the recipe API and turns failures into state messages

package flows

import (
	"context"
	"strings"
	"unicode/utf8"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/errors"
	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/core/state"
)

// User-facing messages written to the session error field
const (
	MsgMissingAPIKey = "Please provide your Spoonacular API key"
	MsgSearchFailed  = "Failed to search recipes"
	MsgDetailsFailed = "Failed to get recipe details"
)

// MinSuggestionLength is the shortest query that is sent for autocompletion
const MinSuggestionLength = 2

// Orchestrator coordinates the recipe API with session state
type Orchestrator struct {
	api              interfaces.RecipeAPI
	logger           interfaces.Logger
	prefetcher       interfaces.RecipePrefetcher
	prefetchLimit    int
	includeNutrition bool
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithPrefetcher hands the first limit recipe ids of each successful
// ingredient search to p
func WithPrefetcher(p interfaces.RecipePrefetcher, limit int) Option {
	return func(o *Orchestrator) {
		o.prefetcher = p
		o.prefetchLimit = limit
	}
}

// WithNutrition makes detail lookups request nutrition data
func WithNutrition(include bool) Option {
	return func(o *Orchestrator) {
		o.includeNutrition = include
	}
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(api interfaces.RecipeAPI, logger interfaces.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		api:    api,
		logger: logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SearchByIngredients replaces the session's recipes with matches for its
// ingredients. The returned error is also recorded in the session state.
func (o *Orchestrator) SearchByIngredients(ctx context.Context, store *state.Store) error {
	current := store.State()

	if len(current.Ingredients) == 0 {
		// Supersedes any search still in flight
		ticket := store.Begin(state.RequestSearch)
		store.Finish(ticket, state.SetRecipes{Recipes: []domain.Recipe{}})
		return nil
	}

	if err := requireAPIKey(store, current); err != nil {
		return err
	}

	ticket := store.Begin(state.RequestSearch, state.SetLoading{Loading: true}, state.SetError{Message: ""})

	recipes, err := o.api.SearchByIngredients(ctx, current.APIKey, domain.NewIngredientQuery(current.Ingredients))
	if err != nil {
		store.Finish(ticket, state.SetError{Message: errors.UserMessage(err, MsgSearchFailed)})
		o.logWarn("Recipe search failed", map[string]interface{}{
			"ingredients": len(current.Ingredients),
			"error":       err.Error(),
		})
		return err
	}

	if store.Finish(ticket, state.SetRecipes{Recipes: recipes}) {
		o.prefetch(current.APIKey, recipes)
	}
	return nil
}

// RecipeDetails loads one recipe into the session's selected recipe and
// returns it. On failure the selected recipe is left unchanged.
func (o *Orchestrator) RecipeDetails(ctx context.Context, store *state.Store, id int) (*domain.RecipeDetails, error) {
	current := store.State()

	if err := requireAPIKey(store, current); err != nil {
		return nil, err
	}

	ticket := store.Begin(state.RequestDetails, state.SetLoading{Loading: true}, state.SetError{Message: ""})

	details, err := o.api.RecipeDetails(ctx, current.APIKey, id, o.includeNutrition)
	if err != nil {
		store.Finish(ticket, state.SetError{Message: errors.UserMessage(err, MsgDetailsFailed)})
		o.logWarn("Recipe details failed", map[string]interface{}{
			"recipe_id": id,
			"error":     err.Error(),
		})
		return nil, err
	}

	store.Finish(ticket, state.SetSelectedRecipe{Recipe: details})
	return details, nil
}

// IngredientSuggestions autocompletes query. It never changes state and
// never fails: errors are logged and yield an empty result.
func (o *Orchestrator) IngredientSuggestions(ctx context.Context, store *state.Store, query string) []domain.IngredientSuggestion {
	apiKey := store.State().APIKey
	if apiKey == "" || utf8.RuneCountInString(query) < MinSuggestionLength {
		return []domain.IngredientSuggestion{}
	}

	suggestions, err := o.api.IngredientSuggestions(ctx, apiKey, query, domain.DefaultSuggestionCount)
	if err != nil {
		o.logWarn("Failed to get ingredient suggestions", map[string]interface{}{
			"error": err.Error(),
		})
		return []domain.IngredientSuggestion{}
	}
	if suggestions == nil {
		return []domain.IngredientSuggestion{}
	}
	return suggestions
}

// SearchWithFilters runs a free text search narrowed by the session's
// ingredients and filters, replacing its recipes with the first page.
func (o *Orchestrator) SearchWithFilters(ctx context.Context, store *state.Store, query string) error {
	current := store.State()

	if err := requireAPIKey(store, current); err != nil {
		return err
	}

	ticket := store.Begin(state.RequestSearch, state.SetLoading{Loading: true}, state.SetError{Message: ""})

	page, err := o.api.ComplexSearch(ctx, current.APIKey, domain.ComplexQuery{
		Query:       strings.TrimSpace(query),
		Ingredients: current.Ingredients,
		Filters:     current.Filters,
		Number:      domain.DefaultResultCount,
	})
	if err != nil {
		store.Finish(ticket, state.SetError{Message: errors.UserMessage(err, MsgSearchFailed)})
		o.logWarn("Filtered recipe search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	var results []domain.Recipe
	if page != nil {
		results = page.Results
	}
	store.Finish(ticket, state.SetRecipes{Recipes: results})
	return nil
}

func requireAPIKey(store *state.Store, current state.AppState) error {
	if current.HasAPIKey() {
		return nil
	}
	store.Dispatch(state.SetError{Message: MsgMissingAPIKey})
	return &errors.ValidationError{Field: "apiKey", Message: MsgMissingAPIKey}
}

func (o *Orchestrator) prefetch(apiKey string, recipes []domain.Recipe) {
	if o.prefetcher == nil || o.prefetchLimit <= 0 || len(recipes) == 0 {
		return
	}

	n := min(o.prefetchLimit, len(recipes))
	ids := make([]int, 0, n)
	for _, r := range recipes[:n] {
		ids = append(ids, r.ID)
	}
	o.prefetcher.Prefetch(apiKey, ids, o.includeNutrition)
}

func (o *Orchestrator) logWarn(msg string, fields map[string]interface{}) {
	if o.logger != nil {
		o.logger.Warn(msg, fields)
	}
}
