// Package apierror defines the failure taxonomy shared by all services and
// the canonical error envelope returned to clients. Handlers never invent
// status codes: every service error is resolved here, so the mapping stays
// 1:1 and stable across refactors.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind discriminates the failure classes of the API.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInvalidState Kind = "invalid_state"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindValidation   Kind = "validation"
	KindUnexpected   Kind = "unexpected"
)

// Sentinel errors, one per kind. Services wrap these with detail via the
// constructors below; handlers and tests match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries a sentinel kind plus a human-readable detail message.
type Error struct {
	kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }
func (e *Error) Unwrap() error { return e.kind }

func NotFound(format string, args ...any) error {
	return &Error{kind: ErrNotFound, Detail: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{kind: ErrConflict, Detail: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) error {
	return &Error{kind: ErrInvalidState, Detail: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) error {
	return &Error{kind: ErrUnauthorized, Detail: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) error {
	return &Error{kind: ErrForbidden, Detail: fmt.Sprintf(format, args...)}
}

// Response is the JSON envelope for every 4xx/5xx body.
type Response struct {
	Detail string `json:"detail"`
	Kind   Kind   `json:"kind,omitempty"`
}

func New(msg string) *Response {
	return &Response{Detail: msg}
}

// ValidationResponse wraps per-field validation failures.
type ValidationResponse struct {
	Detail string            `json:"detail"`
	Kind   Kind              `json:"kind"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationResponse {
	return &ValidationResponse{Detail: "Validation error", Kind: KindValidation, Fields: fields}
}

// Resolve maps a service error to its HTTP status and response body.
// Unknown errors are unexpected: the caller logs the cause and the client
// sees only a generic message.
func Resolve(err error) (int, *Response) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, &Response{Detail: err.Error(), Kind: KindNotFound}
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, &Response{Detail: err.Error(), Kind: KindConflict}
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict, &Response{Detail: err.Error(), Kind: KindInvalidState}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, &Response{Detail: err.Error(), Kind: KindUnauthorized}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, &Response{Detail: err.Error(), Kind: KindForbidden}
	}
	return http.StatusInternalServerError, &Response{Detail: "Internal server error", Kind: KindUnexpected}
}
