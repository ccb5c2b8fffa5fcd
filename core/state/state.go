// ABOUTME: Application state for one recipe finder session
// ABOUTME: Holds ingredients, results, the selected recipe, flags, filters and the credential

package state

import (
	"slices"

	"recipe-finder-api/core/domain"
)

// AppState is everything a session knows. It is only changed through Reduce.
// Recipe records are shared between snapshots and must be treated as read-only.
type AppState struct {
	// Ingredients is an ordered set: insertion order, no duplicates
	Ingredients []string

	// Recipes holds the latest search results
	Recipes []domain.Recipe

	// SelectedRecipe is the recipe opened for detail viewing, nil when none
	SelectedRecipe *domain.RecipeDetails

	// Loading is true while a search or detail request is in flight
	Loading bool

	// Error is the last user-facing failure message, empty when none
	Error string

	// Filters narrow complex searches
	Filters domain.SearchFilters

	// APIKey is the user's credential for the remote recipe service
	APIKey string
}

// NewAppState returns the state a session starts with
func NewAppState() AppState {
	return AppState{
		Ingredients: []string{},
		Recipes:     []domain.Recipe{},
		Filters:     domain.DefaultSearchFilters(),
	}
}

// Clone returns a copy whose slices do not alias s
func (s AppState) Clone() AppState {
	out := s
	out.Ingredients = slices.Clone(s.Ingredients)
	out.Recipes = slices.Clone(s.Recipes)
	if out.Ingredients == nil {
		out.Ingredients = []string{}
	}
	if out.Recipes == nil {
		out.Recipes = []domain.Recipe{}
	}
	return out
}

// HasAPIKey reports whether a credential is set
func (s AppState) HasAPIKey() bool {
	return s.APIKey != ""
}

// HasIngredient reports whether value is already in the ingredient set
func (s AppState) HasIngredient(value string) bool {
	return slices.Contains(s.Ingredients, value)
}
