// ABOUTME: Session handlers for the Huma API
// ABOUTME: Provides HTTP endpoints that create sessions and dispatch state actions

package handlers

import (
	"context"
	"net/http"

	"recipe-finder-api/api/dto/mappers"
	"recipe-finder-api/api/dto/requests"
	"recipe-finder-api/api/dto/responses"
	"recipe-finder-api/core/session"
	"recipe-finder-api/core/state"

	"github.com/danielgtaylor/huma/v2"
)

// SessionService interface defines the methods needed from the session service
type SessionService interface {
	Create(ctx context.Context) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
	Count() int
}

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessions SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers all session-related routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Create a session",
		Description:   "Starts a new recipe finder session with default filters and no ingredients",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Get session state",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteSession",
		Method:        http.MethodDelete,
		Path:          "/sessions/{id}",
		Summary:       "Delete a session",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteSession)

	huma.Register(api, huma.Operation{
		OperationID: "setApiKey",
		Method:      http.MethodPut,
		Path:        "/sessions/{id}/api-key",
		Summary:     "Set the Spoonacular API key",
		Description: "Stores the credential used for this session's searches. It is never returned.",
		Tags:        []string{"Sessions"},
	}, h.SetAPIKey)

	huma.Register(api, huma.Operation{
		OperationID: "addIngredient",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/ingredients",
		Summary:     "Add an ingredient",
		Description: "Appends an ingredient unless it is already present",
		Tags:        []string{"Ingredients"},
	}, h.AddIngredient)

	huma.Register(api, huma.Operation{
		OperationID: "removeIngredient",
		Method:      http.MethodDelete,
		Path:        "/sessions/{id}/ingredients/{name}",
		Summary:     "Remove an ingredient",
		Tags:        []string{"Ingredients"},
	}, h.RemoveIngredient)

	huma.Register(api, huma.Operation{
		OperationID: "clearIngredients",
		Method:      http.MethodDelete,
		Path:        "/sessions/{id}/ingredients",
		Summary:     "Clear all ingredients",
		Tags:        []string{"Ingredients"},
	}, h.ClearIngredients)

	huma.Register(api, huma.Operation{
		OperationID: "updateFilters",
		Method:      http.MethodPatch,
		Path:        "/sessions/{id}/filters",
		Summary:     "Update search filters",
		Description: "Merges the given fields into the session filters; omitted fields keep their value",
		Tags:        []string{"Filters"},
	}, h.UpdateFilters)

	huma.Register(api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/recipes",
		Summary:     "List search results",
		Description: "Pages through the recipes from the session's latest search",
		Tags:        []string{"Recipes"},
	}, h.ListRecipes)

	huma.Register(api, huma.Operation{
		OperationID: "clearSelectedRecipe",
		Method:      http.MethodDelete,
		Path:        "/sessions/{id}/selected-recipe",
		Summary:     "Close the selected recipe",
		Tags:        []string{"Recipes"},
	}, h.ClearSelectedRecipe)
}

// SessionPathInput identifies a session
type SessionPathInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// SessionOutput defines the output for session operations
type SessionOutput struct {
	Body responses.SessionResponse
}

// StateOutput returns the session state after a change
type StateOutput struct {
	Body responses.StateResponse
}

// CreateSession handles the POST /sessions endpoint
func (h *SessionHandler) CreateSession(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	sess, err := h.sessions.Create(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(sess)}, nil
}

// GetSession handles the GET /sessions/{id} endpoint
func (h *SessionHandler) GetSession(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(sess)}, nil
}

// DeleteSession handles the DELETE /sessions/{id} endpoint
func (h *SessionHandler) DeleteSession(ctx context.Context, input *SessionPathInput) (*struct{}, error) {
	if err := h.sessions.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

// SetAPIKeyInput defines the input for the SetAPIKey operation
type SetAPIKeyInput struct {
	SessionPathInput
	Body requests.SetAPIKeyRequest
}

// SetAPIKey handles the PUT /sessions/{id}/api-key endpoint
func (h *SessionHandler) SetAPIKey(ctx context.Context, input *SetAPIKeyInput) (*StateOutput, error) {
	input.Body.Normalize()
	return h.dispatch(ctx, input.ID, state.SetAPIKey{Key: input.Body.APIKey})
}

// AddIngredientInput defines the input for the AddIngredient operation
type AddIngredientInput struct {
	SessionPathInput
	Body requests.AddIngredientRequest
}

// AddIngredient handles the POST /sessions/{id}/ingredients endpoint
func (h *SessionHandler) AddIngredient(ctx context.Context, input *AddIngredientInput) (*StateOutput, error) {
	if err := input.Body.Normalize(); err != nil {
		return nil, toHumaError(err)
	}
	return h.dispatch(ctx, input.ID, state.AddIngredient{Value: input.Body.Value})
}

// RemoveIngredientInput defines the input for the RemoveIngredient operation
type RemoveIngredientInput struct {
	SessionPathInput
	Name string `path:"name" doc:"Ingredient to remove"`
}

// RemoveIngredient handles the DELETE /sessions/{id}/ingredients/{name} endpoint
func (h *SessionHandler) RemoveIngredient(ctx context.Context, input *RemoveIngredientInput) (*StateOutput, error) {
	return h.dispatch(ctx, input.ID, state.RemoveIngredient{Value: input.Name})
}

// ClearIngredients handles the DELETE /sessions/{id}/ingredients endpoint
func (h *SessionHandler) ClearIngredients(ctx context.Context, input *SessionPathInput) (*StateOutput, error) {
	return h.dispatch(ctx, input.ID, state.ClearIngredients{})
}

// UpdateFiltersInput defines the input for the UpdateFilters operation
type UpdateFiltersInput struct {
	SessionPathInput
	Body requests.UpdateFiltersRequest
}

// UpdateFilters handles the PATCH /sessions/{id}/filters endpoint
func (h *SessionHandler) UpdateFilters(ctx context.Context, input *UpdateFiltersInput) (*StateOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, toHumaError(err)
	}
	return h.dispatch(ctx, input.ID, state.UpdateFilters{Patch: input.Body.ToPatch()})
}

// ListRecipesInput defines the input for the ListRecipes operation
type ListRecipesInput struct {
	SessionPathInput
	Page    int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage int `query:"per_page" minimum:"1" maximum:"100" default:"12" doc:"Number of recipes per page"`
}

// ListRecipesOutput defines the output for the ListRecipes operation
type ListRecipesOutput struct {
	Body responses.RecipePageResponse
}

// ListRecipes handles the GET /sessions/{id}/recipes endpoint
func (h *SessionHandler) ListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error) {
	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListRecipesOutput{Body: mappers.ToRecipePage(sess.Store.State(), input.Page, input.PerPage)}, nil
}

// ClearSelectedRecipe handles the DELETE /sessions/{id}/selected-recipe endpoint
func (h *SessionHandler) ClearSelectedRecipe(ctx context.Context, input *SessionPathInput) (*StateOutput, error) {
	return h.dispatch(ctx, input.ID, state.SetSelectedRecipe{Recipe: nil})
}

func (h *SessionHandler) dispatch(ctx context.Context, id string, action state.Action) (*StateOutput, error) {
	sess, err := h.sessions.Get(ctx, id)
	if err != nil {
		return nil, toHumaError(err)
	}
	sess.Store.Dispatch(action)
	return &StateOutput{Body: mappers.ToStateResponse(sess.Store.State())}, nil
}
