// ABOUTME: Mappers for converting session state into API DTOs
// ABOUTME: Keeps the credential out of every response

package mappers

import (
	"recipe-finder-api/api/dto/responses"
	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/recipes"
	"recipe-finder-api/core/session"
	"recipe-finder-api/core/state"
	"recipe-finder-api/pkg/utils/duration"
)

// ToStateResponse converts an AppState to a StateResponse DTO
func ToStateResponse(s state.AppState) responses.StateResponse {
	return responses.StateResponse{
		Ingredients:    nonNilStrings(s.Ingredients),
		Recipes:        nonNilRecipes(s.Recipes),
		SelectedRecipe: s.SelectedRecipe,
		Loading:        s.Loading,
		Error:          s.Error,
		Filters:        s.Filters,
		HasAPIKey:      s.HasAPIKey(),
	}
}

// ToSessionResponse converts a Session to a SessionResponse DTO
func ToSessionResponse(sess *session.Session) *responses.SessionResponse {
	if sess == nil {
		return nil
	}

	return &responses.SessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		State:     ToStateResponse(sess.Store.State()),
	}
}

// ToRecipeDetailsResponse pairs fetched details with the session state.
// A nil recipe (failed fetch) leaves the text fields empty.
func ToRecipeDetailsResponse(details *domain.RecipeDetails, s state.AppState) responses.RecipeDetailsResponse {
	resp := responses.RecipeDetailsResponse{
		Recipe: details,
		State:  ToStateResponse(s),
	}
	if details != nil {
		resp.ReadyIn = duration.MinutesToHumanReadable(details.ReadyInMinutes)
		resp.SummaryText = details.PlainSummary()
	}
	return resp
}

// ToRecipePage pages through the session's recipes
func ToRecipePage(s state.AppState, page, perPage int) responses.RecipePageResponse {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = recipes.DefaultPerPage
	}

	return responses.RecipePageResponse{
		Recipes:    recipes.PaginateRecipes(s.Recipes, page, perPage),
		Page:       page,
		PerPage:    perPage,
		Total:      len(s.Recipes),
		TotalPages: recipes.TotalPages(len(s.Recipes), perPage),
	}
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilRecipes(v []domain.Recipe) []domain.Recipe {
	if v == nil {
		return []domain.Recipe{}
	}
	return v
}
