// ABOUTME: Error types and handling for the recipe finder library
// ABOUTME: Provides structured errors that classify failures from the core packages

package finder

import (
	"context"
	stderrors "errors"
	"fmt"

	"recipe-finder-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates bad input or a missing API key
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeUpstream indicates the recipe service answered with a failure status
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeNetwork indicates a network error or timeout
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParsing indicates an unreadable response body
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Status  int
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// wrapError classifies an error from the core packages. The message is the one
// the session state shows to the user.
func wrapError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	msg := errors.UserMessage(err, fallback)
	e := NewError(ErrorTypeInternal, msg).WithCause(err)
	switch {
	case errors.IsValidation(err):
		e.Type = ErrorTypeValidation
	case errors.IsNotFound(err):
		e.Type = ErrorTypeNotFound
	case errors.IsHTTP(err):
		e.Type = ErrorTypeUpstream
		e.Status = errors.StatusCode(err)
	case errors.IsTransport(err), stderrors.Is(err, context.DeadlineExceeded):
		e.Type = ErrorTypeNetwork
	case errors.IsDecode(err):
		e.Type = ErrorTypeParsing
	}
	return e
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsUpstreamError checks if the recipe service rejected the call
func IsUpstreamError(err error) bool { return isType(err, ErrorTypeUpstream) }

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool { return isType(err, ErrorTypeNetwork) }

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool { return isType(err, ErrorTypeParsing) }
