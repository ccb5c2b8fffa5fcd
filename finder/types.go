// ABOUTME: Public types for the recipe finder library API
// ABOUTME: Aliases the domain models and exposes a read-only session snapshot

package finder

import (
	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/state"
)

type (
	// Recipe is a search result
	Recipe = domain.Recipe

	// RecipeDetails is the full record of one recipe
	RecipeDetails = domain.RecipeDetails

	// IngredientSuggestion is an autocomplete entry
	IngredientSuggestion = domain.IngredientSuggestion

	// Filters narrow SearchWithFilters
	Filters = domain.SearchFilters

	// FilterPatch is a partial filter update; nil fields are kept
	FilterPatch = domain.FilterPatch
)

// State is a snapshot of a session. The API key itself is never exposed.
type State struct {
	Ingredients    []string       `json:"ingredients"`
	Recipes        []Recipe       `json:"recipes"`
	SelectedRecipe *RecipeDetails `json:"selected_recipe,omitempty"`
	Loading        bool           `json:"loading"`
	Error          string         `json:"error,omitempty"`
	Filters        Filters        `json:"filters"`
	HasAPIKey      bool           `json:"has_api_key"`
}

func snapshot(s state.AppState) State {
	return State{
		Ingredients:    s.Ingredients,
		Recipes:        s.Recipes,
		SelectedRecipe: s.SelectedRecipe,
		Loading:        s.Loading,
		Error:          s.Error,
		Filters:        s.Filters,
		HasAPIKey:      s.HasAPIKey(),
	}
}
