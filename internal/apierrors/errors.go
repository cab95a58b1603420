package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeConfigurationError = "CONFIGURATION_ERROR"
	CodeProviderRejected   = "PROVIDER_REJECTED"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// APIError is the error union surfaced at the HTTP boundary. Handlers never
// build status codes themselves; they hand errors to RespondWithError and the
// mapping happens in one place.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound builds a 404 error
func NotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// ConfigurationError builds a 500 error for missing/invalid provider settings
func ConfigurationError(message string, internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeConfigurationError,
		Message:    message,
		Internal:   internal,
	}
}

// InternalError builds a sanitized 500 - never exposes internal details
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "Ocurrió un error interno. Por favor, intenta más tarde.",
		Internal:   internal,
	}
}
