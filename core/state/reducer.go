// ABOUTME: Pure transition function for session state
// ABOUTME: Applies one action to a state and returns the next state without mutating the input

package state

import (
	"slices"

	"recipe-finder-api/core/domain"
)

// Reduce returns the state that results from applying a to s.
// It never mutates s and never panics; unknown or nil actions return s unchanged.
func Reduce(s AppState, a Action) AppState {
	switch a := a.(type) {
	case AddIngredient:
		if slices.Contains(s.Ingredients, a.Value) {
			return s
		}
		s.Ingredients = append(slices.Clone(s.Ingredients), a.Value)
		return s

	case RemoveIngredient:
		s.Ingredients = slices.DeleteFunc(slices.Clone(s.Ingredients), func(v string) bool {
			return v == a.Value
		})
		if s.Ingredients == nil {
			s.Ingredients = []string{}
		}
		return s

	case ClearIngredients:
		s.Ingredients = []string{}
		return s

	case SetRecipes:
		s.Recipes = slices.Clone(a.Recipes)
		if s.Recipes == nil {
			s.Recipes = []domain.Recipe{}
		}
		return s

	case SetSelectedRecipe:
		s.SelectedRecipe = a.Recipe
		return s

	case SetLoading:
		s.Loading = a.Loading
		return s

	case SetError:
		s.Error = a.Message
		return s

	case UpdateFilters:
		s.Filters = s.Filters.Merge(a.Patch)
		return s

	case SetAPIKey:
		s.APIKey = a.Key
		return s

	default:
		return s
	}
}
