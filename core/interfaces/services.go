// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the recipe service contract shared by the remote client and the cached service

package interfaces

import (
	"context"

	"recipe-finder-api/core/domain"
)

// RecipeAPI is the remote recipe service. The credential travels with every
// call, so one implementation can serve many users concurrently.
type RecipeAPI interface {
	// SearchByIngredients finds recipes that use the given ingredients
	SearchByIngredients(ctx context.Context, apiKey string, query domain.IngredientQuery) ([]domain.Recipe, error)

	// RecipeDetails fetches the full record for one recipe
	RecipeDetails(ctx context.Context, apiKey string, id int, includeNutrition bool) (*domain.RecipeDetails, error)

	// IngredientSuggestions autocompletes an ingredient name
	IngredientSuggestions(ctx context.Context, apiKey string, query string, number int) ([]domain.IngredientSuggestion, error)

	// ComplexSearch runs a free text search narrowed by filters
	ComplexSearch(ctx context.Context, apiKey string, query domain.ComplexQuery) (*domain.SearchPage, error)
}

// RecipePrefetcher warms the details cache in the background. Prefetch must
// not block and may drop work when busy.
type RecipePrefetcher interface {
	Prefetch(apiKey string, recipeIDs []int, includeNutrition bool)
}
