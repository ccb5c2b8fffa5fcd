package recipes

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"recipe-finder-api/core/domain"
)

// Operation labels for logs and metrics
const (
	opSearchByIngredients   = "search_by_ingredients"
	opRecipeDetails         = "recipe_details"
	opIngredientSuggestions = "ingredient_suggestions"
	opComplexSearch         = "complex_search"
)

// Request keys describe the request only. Stored entries are additionally
// scoped to a digest of the credential that fetched them, so a key the
// remote service would reject never reads another caller's results.

func ingredientsKey(q domain.IngredientQuery) string {
	raw := fmt.Sprintf("%s|%d|%d|%t", strings.Join(q.Ingredients, ","), q.Number, q.Ranking, q.IgnorePantry)
	return "recipes:ingredients:" + digest(raw)
}

func detailsKey(id int, includeNutrition bool) string {
	return fmt.Sprintf("recipes:details:%d:%t", id, includeNutrition)
}

func suggestionsKey(query string, number int) string {
	return "recipes:suggest:" + digest(fmt.Sprintf("%s|%d", query, number))
}

func complexKey(q domain.ComplexQuery) string {
	f := q.Filters
	raw := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d|%d|%d|%d",
		q.Query, strings.Join(q.Ingredients, ","),
		f.Cuisine, f.Diet, f.Type, f.MaxReadyTime, f.MinCalories, f.MaxCalories,
		q.Number, q.Offset)
	return "recipes:complex:" + digest(raw)
}

// scopedKey appends a short credential digest to a request key
func scopedKey(key, apiKey string) string {
	return key + ":" + digest("credential|" + apiKey)[:credentialTagLen]
}

const credentialTagLen = 16

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
