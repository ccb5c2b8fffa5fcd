package spoonacular

import (
	"fmt"
	"net/url"
	"strings"

	"recipe-finder-api/core/domain"
)

func ingredientSearchParams(apiKey string, q domain.IngredientQuery) url.Values {
	number := q.Number
	if number <= 0 {
		number = domain.DefaultResultCount
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("ingredients", strings.Join(q.Ingredients, ","))
	params.Set("number", fmt.Sprint(number))
	params.Set("ranking", fmt.Sprint(q.Ranking))
	params.Set("ignorePantry", fmt.Sprint(q.IgnorePantry))
	return params
}

// complexSearchParams leaves out every filter still at its unset value
// ("" or 0) so the remote never receives a filter that filters nothing.
func complexSearchParams(apiKey string, q domain.ComplexQuery) url.Values {
	number := q.Number
	if number <= 0 {
		number = domain.DefaultResultCount
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("query", q.Query)
	params.Set("includeIngredients", strings.Join(q.Ingredients, ","))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("number", fmt.Sprint(number))
	params.Set("offset", fmt.Sprint(offset))

	f := q.Filters
	setIfNotEmpty(params, "cuisine", f.Cuisine)
	setIfNotEmpty(params, "diet", f.Diet)
	setIfNotEmpty(params, "type", f.Type)
	setIfPositive(params, "maxReadyTime", f.MaxReadyTime)
	setIfPositive(params, "minCalories", f.MinCalories)
	setIfPositive(params, "maxCalories", f.MaxCalories)

	return params
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setIfPositive(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, fmt.Sprint(value))
	}
}
