// ABOUTME: HTTP metrics middleware for API endpoints
// ABOUTME: Records request counts and latency per chi route pattern

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RequestRecorder receives one observation per request
type RequestRecorder interface {
	RequestStarted() func(method, route string, status int)
}

// MetricsMiddleware records every request under its route pattern so that
// path parameters do not explode label cardinality
func MetricsMiddleware(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := recorder.RequestStarted()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			done(r.Method, routePattern(r), wrapped.statusCode)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
