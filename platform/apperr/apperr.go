// Package apperr provides typed domain errors. Services return these and the
// HTTP layer maps them to status codes, so handlers never hand-pick statuses.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind categorizes a domain error.
type Kind int

const (
	// KindUnknown is the default when no kind was specified.
	KindUnknown Kind = iota
	// KindNotFound indicates a missing resource.
	KindNotFound
	// KindValidation indicates invalid input data.
	KindValidation
	// KindConflict indicates a clash with existing state (duplicate, taken slot).
	KindConflict
	// KindForbidden indicates the caller may not perform the action.
	KindForbidden
	// KindUnauthorized indicates missing or failed authentication.
	KindUnauthorized
	// KindBadRequest indicates a malformed request.
	KindBadRequest
	// KindInternal indicates an unexpected internal failure.
	KindInternal
)

// Error is a domain error with a Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // operation that failed (optional)
	Err     error       // underlying cause (optional)
	Details interface{} // extra payload for the response (optional)
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code for the error's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// New creates a domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a domain error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation name on the error.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails attaches extra response details.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Conflict creates a conflict error.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Forbidden creates a forbidden error.
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Internal creates an internal error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the kind from an error, KindUnknown for untyped errors.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
