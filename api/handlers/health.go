// ABOUTME: Health handler for the Huma API
// ABOUTME: Reports liveness and the number of live sessions

package handlers

import (
	"context"
	"net/http"

	"recipe-finder-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles liveness checks
type HealthHandler struct {
	sessions SessionService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions SessionService) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /healthz endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:   "ok",
		Sessions: h.sessions.Count(),
	}}, nil
}
