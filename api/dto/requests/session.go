// ABOUTME: Request DTOs for session endpoints
// ABOUTME: Provides validation and normalization for incoming session mutations

package requests

import (
	"strings"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/errors"
)

// SetAPIKeyRequest replaces the session credential. An empty key clears it.
type SetAPIKeyRequest struct {
	APIKey string `json:"api_key" maxLength:"128" doc:"Spoonacular API key; empty clears it"`
}

// Normalize trims surrounding whitespace
func (r *SetAPIKeyRequest) Normalize() {
	r.APIKey = strings.TrimSpace(r.APIKey)
}

// AddIngredientRequest adds one ingredient to the session
type AddIngredientRequest struct {
	Value string `json:"value" minLength:"1" maxLength:"100" doc:"Ingredient name" example:"tomato"`
}

// Normalize trims the value and rejects blank names
func (r *AddIngredientRequest) Normalize() error {
	r.Value = strings.TrimSpace(r.Value)
	if r.Value == "" {
		return &errors.ValidationError{Field: "value", Message: "ingredient must not be blank"}
	}
	return nil
}

// UpdateFiltersRequest is a partial filter update; omitted fields keep their value
type UpdateFiltersRequest struct {
	Cuisine      *string `json:"cuisine,omitempty" maxLength:"50" doc:"Cuisine, empty clears it" example:"italian"`
	Diet         *string `json:"diet,omitempty" maxLength:"50" doc:"Diet, empty clears it" example:"vegetarian"`
	Type         *string `json:"type,omitempty" maxLength:"50" doc:"Dish type, empty clears it" example:"main course"`
	MaxReadyTime *int    `json:"maxReadyTime,omitempty" minimum:"0" doc:"Ready time ceiling in minutes, 0 unsets it"`
	MinCalories  *int    `json:"minCalories,omitempty" minimum:"0" doc:"Calorie floor, 0 unsets it"`
	MaxCalories  *int    `json:"maxCalories,omitempty" minimum:"0" doc:"Calorie ceiling, 0 unsets it"`
}

// ToPatch converts the request into a filter patch
func (r UpdateFiltersRequest) ToPatch() domain.FilterPatch {
	return domain.FilterPatch{
		Cuisine:      trimmed(r.Cuisine),
		Diet:         trimmed(r.Diet),
		Type:         trimmed(r.Type),
		MaxReadyTime: r.MaxReadyTime,
		MinCalories:  r.MinCalories,
		MaxCalories:  r.MaxCalories,
	}
}

// Validate checks that the calorie range stays ordered when both ends are given
func (r UpdateFiltersRequest) Validate() error {
	if r.MinCalories != nil && r.MaxCalories != nil && *r.MaxCalories > 0 && *r.MinCalories > *r.MaxCalories {
		return &errors.ValidationError{Field: "minCalories", Message: "minCalories must not exceed maxCalories"}
	}
	return nil
}

// ComplexSearchRequest runs a free text search with the session filters
type ComplexSearchRequest struct {
	Query string `json:"query,omitempty" maxLength:"200" doc:"Free text query" example:"pasta"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
