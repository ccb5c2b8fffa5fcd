// ABOUTME: Action variants accepted by the session reducer
// ABOUTME: A closed set of tagged structs, one per state transition

package state

import "recipe-finder-api/core/domain"

// ActionKind names an action variant
type ActionKind string

const (
	KindAddIngredient     ActionKind = "ADD_INGREDIENT"
	KindRemoveIngredient  ActionKind = "REMOVE_INGREDIENT"
	KindClearIngredients  ActionKind = "CLEAR_INGREDIENTS"
	KindSetRecipes        ActionKind = "SET_RECIPES"
	KindSetSelectedRecipe ActionKind = "SET_SELECTED_RECIPE"
	KindSetLoading        ActionKind = "SET_LOADING"
	KindSetError          ActionKind = "SET_ERROR"
	KindUpdateFilters     ActionKind = "UPDATE_FILTERS"
	KindSetAPIKey         ActionKind = "SET_API_KEY"
)

// AllActionKinds lists every action variant the reducer handles
func AllActionKinds() []ActionKind {
	return []ActionKind{
		KindAddIngredient,
		KindRemoveIngredient,
		KindClearIngredients,
		KindSetRecipes,
		KindSetSelectedRecipe,
		KindSetLoading,
		KindSetError,
		KindUpdateFilters,
		KindSetAPIKey,
	}
}

// Action is a state transition request. The set is closed: only this
// package can declare variants.
type Action interface {
	Kind() ActionKind
	action()
}

// AddIngredient appends Value unless it is already present
type AddIngredient struct{ Value string }

// RemoveIngredient removes every occurrence of Value
type RemoveIngredient struct{ Value string }

// ClearIngredients empties the ingredient set
type ClearIngredients struct{}

// SetRecipes replaces the result list
type SetRecipes struct{ Recipes []domain.Recipe }

// SetSelectedRecipe replaces the selected recipe; nil clears it
type SetSelectedRecipe struct{ Recipe *domain.RecipeDetails }

// SetLoading replaces the loading flag
type SetLoading struct{ Loading bool }

// SetError replaces the error message; empty clears it
type SetError struct{ Message string }

// UpdateFilters merges Patch into the filters
type UpdateFilters struct{ Patch domain.FilterPatch }

// SetAPIKey replaces the credential
type SetAPIKey struct{ Key string }

func (AddIngredient) Kind() ActionKind     { return KindAddIngredient }
func (RemoveIngredient) Kind() ActionKind  { return KindRemoveIngredient }
func (ClearIngredients) Kind() ActionKind  { return KindClearIngredients }
func (SetRecipes) Kind() ActionKind        { return KindSetRecipes }
func (SetSelectedRecipe) Kind() ActionKind { return KindSetSelectedRecipe }
func (SetLoading) Kind() ActionKind        { return KindSetLoading }
func (SetError) Kind() ActionKind          { return KindSetError }
func (UpdateFilters) Kind() ActionKind     { return KindUpdateFilters }
func (SetAPIKey) Kind() ActionKind         { return KindSetAPIKey }

func (AddIngredient) action()     {}
func (RemoveIngredient) action()  {}
func (ClearIngredients) action()  {}
func (SetRecipes) action()        {}
func (SetSelectedRecipe) action() {}
func (SetLoading) action()        {}
func (SetError) action()          {}
func (UpdateFilters) action()     {}
func (SetAPIKey) action()         {}
