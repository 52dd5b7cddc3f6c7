// Package apierror provides standardized error response structures for the API
// and the error taxonomy services use to signal how a failure maps to HTTP.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Kind marks an error with the failure class the HTTP layer maps to a status
// code. Services wrap domain errors with one of the constructors below.
type Kind int

const (
	// KindValidation: missing or malformed required fields → 400.
	KindValidation Kind = iota
	// KindNotFound: referenced entity does not exist → 404.
	KindNotFound
	// KindState: a valid operation against an object in the wrong state
	// (e.g. creating events on a closed session) → 400.
	KindState
	// KindForbidden: role tier or session-lock rule rejected the caller → 403.
	KindForbidden
	// KindUnauthorized: bad credentials, expired token, locked account → 401.
	KindUnauthorized
)

type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// Validation builds a validation error with the given client-safe message.
func Validation(msg string) error { return &kindError{KindValidation, msg} }

// NotFound builds a reference error for a missing entity.
func NotFound(msg string) error { return &kindError{KindNotFound, msg} }

// State builds a state error (wrong lifecycle state for the operation).
func State(msg string) error { return &kindError{KindState, msg} }

// Forbidden builds an authorization error.
func Forbidden(msg string) error { return &kindError{KindForbidden, msg} }

// Unauthorized builds an authentication error.
func Unauthorized(msg string) error { return &kindError{KindUnauthorized, msg} }

// KindOf extracts the failure class of err. ok is false for untyped errors,
// which the HTTP layer treats as internal.
func KindOf(err error) (Kind, bool) {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind, true
	}
	return 0, false
}
