// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"recipe-finder-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(errors.UserMessage(err, "invalid request"))
	}

	if status := errors.StatusCode(err); status != 0 {
		// Map remote status codes to our API status codes
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return huma.Error401Unauthorized("Recipe service rejected the API key")
		case status == http.StatusPaymentRequired:
			return huma.NewError(http.StatusPaymentRequired, "Recipe service quota exhausted")
		case status == http.StatusTooManyRequests:
			return huma.Error429TooManyRequests("Rate limited by recipe service")
		case status >= 500:
			return huma.Error503ServiceUnavailable("Recipe service error", err)
		default:
			return huma.Error502BadGateway("Unexpected recipe service response", err)
		}
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Recipe service timed out")
	}

	if errors.IsTransport(err) || errors.IsDecode(err) {
		return huma.Error502BadGateway("Recipe service unavailable", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
