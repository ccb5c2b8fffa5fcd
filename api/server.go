// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"recipe-finder-api/api/middleware"
	"recipe-finder-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

const (
	// Title is the OpenAPI title
	Title = "Recipe Finder API"

	// Version is the OpenAPI version
	Version = "1.0.0"
)

// MetricsRecorder is what the server needs from the metrics recorder
type MetricsRecorder interface {
	middleware.RequestRecorder
	RateLimitRejected()
	Handler() http.Handler
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimiter is applied per client IP when set
	RateLimiter *middleware.RateLimiter

	// Metrics records request metrics and serves /metrics when set
	Metrics MetricsRecorder

	// AllowedOrigins defaults to all origins
	AllowedOrigins []string
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be the first middleware
	router.Use(corsHandler(cfg.AllowedOrigins))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(cfg.Metrics))
	}

	if cfg.RateLimiter != nil {
		if cfg.Metrics != nil {
			cfg.RateLimiter.OnReject(cfg.Metrics.RateLimitRejected)
		}
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	// Routes may only be added once every middleware is in place
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Find recipes from the ingredients you have, using the Spoonacular recipe service"

	// The OpenAPI spec is available at /openapi.json
	// The docs UI is available at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300,
	}).Handler
}
