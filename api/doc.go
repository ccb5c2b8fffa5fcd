// Package api provides the HTTP API layer for the Recipe Finder service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for sessions, searches and health
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging, metrics and per-IP rate limiting
//
// # Sessions
//
// Every client works on a session created with POST /sessions. Ingredients,
// filters and the API key are set on the session; searches replace its
// recipes. Responses always carry the session state, and a failed remote
// call is reported in the state's error field with status 200.
//
// # OpenAPI
//
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: middleware.NewRateLimiter(120, 20, 10*time.Minute),
//	})
//
//	handlers.NewSessionHandler(sessions).RegisterRoutes(humaAPI)
//	handlers.NewSearchHandler(sessions, orchestrator, flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "session not found: 4f1c..."
//	}
package api
