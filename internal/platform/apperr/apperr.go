// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the error vocabulary shared by every Artistly domain.

A service returns an [*AppError] when the failure is the caller's to fix
(unknown artist, invalid form, reviewing twice). Anything else is wrapped with
[Internal] and reaches the client only as a generic 500.

Codes:

	NOT_FOUND           404
	UNAUTHORIZED        401
	FORBIDDEN           403
	METHOD_NOT_ALLOWED  405
	CONFLICT            409
	VALIDATION_ERROR    400  (Details lists every failing field)
	UNPROCESSABLE       422
	TOO_MANY_REQUESTS   429
	INTERNAL_ERROR      500
*/
package apperr

import (
	"errors"
	"net/http"
)

// # Codes

const (
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeConflict         = "CONFLICT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnprocessable    = "UNPROCESSABLE"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is a client-facing failure.
//
// Cause is kept for server-side logs and never serialized.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes Cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # Client Errors (4xx)

// NotFound reports a missing resource: NotFound("Artist") reads "Artist not found".
func NotFound(resource string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, resource+" not found")
}

// Unauthorized reports a missing, invalid or expired session.
func Unauthorized(msg string) *AppError {
	return newError(CodeUnauthorized, http.StatusUnauthorized, msg)
}

// Forbidden reports an authenticated caller without the required role.
func Forbidden(msg string) *AppError {
	return newError(CodeForbidden, http.StatusForbidden, msg)
}

// MethodNotAllowed reports a known route hit with the wrong verb.
func MethodNotAllowed() *AppError {
	return newError(CodeMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed")
}

// Conflict reports a write that clashes with the current state, such as a
// duplicate email or a second review of the same application.
func Conflict(msg string) *AppError {
	return newError(CodeConflict, http.StatusConflict, msg)
}

// ValidationError reports rejected input with one detail per failing field.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := newError(CodeValidation, http.StatusBadRequest, msg)
	err.Details = details
	return err
}

// Unprocessable reports well-formed input that cannot be applied in the
// current state, e.g. advancing past the review step.
func Unprocessable(msg string) *AppError {
	return newError(CodeUnprocessable, http.StatusUnprocessableEntity, msg)
}

// TooManyRequests reports a client over its rate limit.
func TooManyRequests() *AppError {
	return newError(CodeTooManyRequests, http.StatusTooManyRequests, "Rate limit exceeded")
}

// # Server Errors (5xx)

// Internal hides cause behind a generic 500.
func Internal(cause error) *AppError {
	err := newError(CodeInternal, http.StatusInternalServerError, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
