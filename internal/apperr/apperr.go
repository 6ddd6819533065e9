// Package apperr defines the coded errors shared by the catalog, matching and
// session packages. Errors compare by code, so callers can write
// errors.Is(err, apperr.ErrValidation) regardless of the message.
package apperr

import (
	"errors"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeAuth         Code = "auth_error"
	CodeAccessDenied Code = "access_denied"
	CodeNotFound     Code = "not_found"
)

// HTTPStatus maps the code onto the status the API answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuth:
		return http.StatusUnauthorized
	case CodeAccessDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// Error is a domain error with a code and an optional offending field.
type Error struct {
	Code    Code
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}

	return false
}

// Sentinels for errors.Is checks.
var (
	ErrValidation   = &Error{Code: CodeValidation, Message: "validation failed"}
	ErrAuth         = &Error{Code: CodeAuth, Message: "authentication failed"}
	ErrAccessDenied = &Error{Code: CodeAccessDenied, Message: "access denied"}
	ErrNotFound     = &Error{Code: CodeNotFound, Message: "not found"}
)

// Validation reports a missing or malformed field.
func Validation(field, message string) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: message}
}

// Auth reports a failed authentication call.
func Auth(message string, cause error) *Error {
	return &Error{Code: CodeAuth, Message: message, Cause: cause}
}

// AccessDenied reports an insufficient role.
func AccessDenied(message string) *Error {
	return &Error{Code: CodeAccessDenied, Message: message}
}

// NotFound reports a missing record.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// CodeOf returns the code of the first *Error in err's chain, or "" when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}
