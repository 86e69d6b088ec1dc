package portalapi

import (
	"fmt"
	"net/http"

	"github.com/victorygp/portal/pkg/httpx"
)

// Error codes shared between the server and its clients.
const (
	ErrorCodeBadRequest   = "bad_request"
	ErrorCodeUnauthorized = "unauthorized"
	ErrorCodeForbidden    = "forbidden"
	ErrorCodeNotFound     = "not_found"
	ErrorCodeConflict     = "conflict"
	ErrorCodeUpstream     = "upstream_error"
	ErrorCodeServerError  = "server_error"
)

// APIError is the structured error body every portal endpoint returns on
// failure. It implements the error interface so clients can surface it
// directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

// WithMessage returns a copy of the error with a more specific message.
func (e *APIError) WithMessage(format string, args ...any) *APIError {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

var (
	// ErrBadRequest is returned for missing required fields, invalid enum
	// values, or rejected file types.
	ErrBadRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeBadRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	// ErrUnauthorized covers bad credentials and invalid, expired or
	// malformed tokens.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "invalid credentials",
	}

	// ErrForbidden is returned on role mismatch or cross-owner access.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "not authorized",
	}

	// ErrNotFound covers missing entities and unknown emails.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrConflict is returned on duplicate email or duplicate primary key.
	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "resource already exists",
	}

	// ErrUpstream surfaces object-store or email-dispatch failures with the
	// underlying message embedded. No retry is attempted.
	ErrUpstream = &APIError{
		StatusCode: http.StatusBadGateway,
		Code:       ErrorCodeUpstream,
		Message:    "upstream dependency failed",
	}

	// ErrServerError is the generic 500.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)
