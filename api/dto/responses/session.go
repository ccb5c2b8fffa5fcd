// ABOUTME: Response DTOs for session endpoints
// ABOUTME: Session state as clients see it, without the stored credential

package responses

import (
	"time"

	"recipe-finder-api/core/domain"
)

// StateResponse is a snapshot of one session's state
type StateResponse struct {
	Ingredients    []string              `json:"ingredients" doc:"Ingredients in insertion order"`
	Recipes        []domain.Recipe       `json:"recipes" doc:"Latest search results"`
	SelectedRecipe *domain.RecipeDetails `json:"selected_recipe,omitempty" doc:"Recipe opened for detail viewing"`
	Loading        bool                  `json:"loading" doc:"True while a request is in flight"`
	Error          string                `json:"error,omitempty" doc:"Last user-facing failure message"`
	Filters        domain.SearchFilters  `json:"filters"`
	HasAPIKey      bool                  `json:"has_api_key" doc:"Whether a Spoonacular API key is set"`
}

// SessionResponse describes a session
type SessionResponse struct {
	ID        string        `json:"id" format:"uuid"`
	CreatedAt time.Time     `json:"created_at"`
	State     StateResponse `json:"state"`
}

// RecipePageResponse is one page of a session's recipes
type RecipePageResponse struct {
	Recipes    []domain.Recipe `json:"recipes"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// RecipeDetailsResponse returns the fetched recipe together with the new state
type RecipeDetailsResponse struct {
	Recipe      *domain.RecipeDetails `json:"recipe,omitempty"`
	ReadyIn     string                `json:"ready_in,omitempty" doc:"Preparation time as text" example:"1 hour 5 minutes"`
	SummaryText string                `json:"summary_text,omitempty" doc:"Summary with markup removed"`
	State       StateResponse         `json:"state"`
}

// SuggestionsResponse lists ingredient autocomplete hits
type SuggestionsResponse struct {
	Suggestions []domain.IngredientSuggestion `json:"suggestions"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Sessions int    `json:"sessions"`
}
