// ABOUTME: Search handlers for the Huma API
// ABOUTME: Runs recipe flows for a session and returns the resulting state

package handlers

import (
	"context"
	"net/http"

	"recipe-finder-api/api/dto/mappers"
	"recipe-finder-api/api/dto/requests"
	"recipe-finder-api/api/dto/responses"
	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/state"
	"recipe-finder-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// Flows interface defines the methods needed from the flow orchestrator
type Flows interface {
	SearchByIngredients(ctx context.Context, store *state.Store) error
	RecipeDetails(ctx context.Context, store *state.Store, id int) (*domain.RecipeDetails, error)
	IngredientSuggestions(ctx context.Context, store *state.Store, query string) []domain.IngredientSuggestion
	SearchWithFilters(ctx context.Context, store *state.Store, query string) error
}

// SearchHandler handles search-related HTTP requests. Remote failures are
// reported through the session's error field, not the HTTP status.
type SearchHandler struct {
	sessions SessionService
	flows    Flows
	flags    featureflags.Manager
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(sessions SessionService, flows Flows, flags featureflags.Manager) *SearchHandler {
	return &SearchHandler{
		sessions: sessions,
		flows:    flows,
		flags:    flags,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchByIngredients",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/search",
		Summary:     "Search recipes by ingredients",
		Description: "Replaces the session's recipes with recipes that use its ingredients",
		Tags:        []string{"Recipes"},
	}, h.SearchByIngredients)

	huma.Register(api, huma.Operation{
		OperationID: "searchWithFilters",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/search/complex",
		Summary:     "Search recipes with filters",
		Description: "Runs a free text search narrowed by the session's ingredients and filters",
		Tags:        []string{"Recipes"},
	}, h.SearchWithFilters)

	huma.Register(api, huma.Operation{
		OperationID: "getRecipeDetails",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/recipes/{recipeId}",
		Summary:     "Get recipe details",
		Description: "Fetches one recipe and makes it the session's selected recipe",
		Tags:        []string{"Recipes"},
	}, h.RecipeDetails)

	huma.Register(api, huma.Operation{
		OperationID: "suggestIngredients",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/suggestions",
		Summary:     "Autocomplete ingredient names",
		Description: "Best effort: failures yield an empty list",
		Tags:        []string{"Ingredients"},
	}, h.Suggestions)
}

// SearchByIngredients handles the POST /sessions/{id}/search endpoint
func (h *SearchHandler) SearchByIngredients(ctx context.Context, input *SessionPathInput) (*StateOutput, error) {
	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	_ = h.flows.SearchByIngredients(detach(ctx), sess.Store)
	return &StateOutput{Body: mappers.ToStateResponse(sess.Store.State())}, nil
}

// ComplexSearchInput defines the input for the SearchWithFilters operation
type ComplexSearchInput struct {
	SessionPathInput
	Body requests.ComplexSearchRequest `required:"false"`
}

// SearchWithFilters handles the POST /sessions/{id}/search/complex endpoint
func (h *SearchHandler) SearchWithFilters(ctx context.Context, input *ComplexSearchInput) (*StateOutput, error) {
	if !h.enabled(ctx, featureflags.ComplexSearchEnabled) {
		return nil, huma.Error404NotFound("complex search is disabled")
	}

	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	_ = h.flows.SearchWithFilters(detach(ctx), sess.Store, input.Body.Query)
	return &StateOutput{Body: mappers.ToStateResponse(sess.Store.State())}, nil
}

// RecipeDetailsInput defines the input for the RecipeDetails operation
type RecipeDetailsInput struct {
	SessionPathInput
	RecipeID int `path:"recipeId" minimum:"1" doc:"Recipe ID"`
}

// RecipeDetailsOutput defines the output for the RecipeDetails operation
type RecipeDetailsOutput struct {
	Body responses.RecipeDetailsResponse
}

// RecipeDetails handles the GET /sessions/{id}/recipes/{recipeId} endpoint
func (h *SearchHandler) RecipeDetails(ctx context.Context, input *RecipeDetailsInput) (*RecipeDetailsOutput, error) {
	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	details, _ := h.flows.RecipeDetails(detach(ctx), sess.Store, input.RecipeID)
	return &RecipeDetailsOutput{Body: mappers.ToRecipeDetailsResponse(details, sess.Store.State())}, nil
}

// SuggestionsInput defines the input for the Suggestions operation
type SuggestionsInput struct {
	SessionPathInput
	Query string `query:"q" maxLength:"100" doc:"Partial ingredient name"`
}

// SuggestionsOutput defines the output for the Suggestions operation
type SuggestionsOutput struct {
	Body responses.SuggestionsResponse
}

// Suggestions handles the GET /sessions/{id}/suggestions endpoint
func (h *SearchHandler) Suggestions(ctx context.Context, input *SuggestionsInput) (*SuggestionsOutput, error) {
	if !h.enabled(ctx, featureflags.SuggestionsEnabled) {
		return nil, huma.Error404NotFound("suggestions are disabled")
	}

	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SuggestionsOutput{Body: responses.SuggestionsResponse{
		Suggestions: h.flows.IngredientSuggestions(ctx, sess.Store, input.Query),
	}}, nil
}

func (h *SearchHandler) enabled(ctx context.Context, flag featureflags.FeatureFlag) bool {
	if h.flags == nil {
		return true
	}
	return h.flags.IsEnabled(ctx, flag)
}

// detach keeps request values but lets a flow finish writing session state
// after the client goes away
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
