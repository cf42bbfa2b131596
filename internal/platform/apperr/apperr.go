// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the single error type that crosses from the service layer
into HTTP responses.

An [AppError] pairs a machine-readable code with a client-safe message and the
status it maps to. The underlying cause rides along for logs only. Login
failures additionally carry a remediation link in Redirect.
*/
package apperr

import (
	"errors"
	"net/http"
)

// # Error Codes

const (
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeValidation   = "VALIDATION_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is returned by services and rendered by respond.Error.
//
// Cause is never serialized.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
	Redirect   string       `json:"redirect,omitempty"`
}

// FieldError names one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// WithRedirect returns a copy of the error carrying a remediation link.
func (e *AppError) WithRedirect(path string) *AppError {
	clone := *e
	clone.Redirect = path
	return &clone
}

// WithCause returns a copy of the error wrapping cause for server-side logs.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// New creates an [AppError] with an explicit code and status.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// # Constructors

// NotFound reports a missing resource, e.g. NotFound("Officer") → "Officer not found".
func NotFound(resource string) *AppError {
	return New(CodeNotFound, resource+" not found", http.StatusNotFound)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// Conflict reports a unique-constraint violation such as a duplicate email.
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// ValidationError reports a malformed request with optional per-field details.
func ValidationError(message string, details ...FieldError) *AppError {
	appError := New(CodeValidation, message, http.StatusBadRequest)
	appError.Details = details
	return appError
}

// Internal hides cause behind a generic 500 message.
func Internal(cause error) *AppError {
	return New(CodeInternal, "An unexpected error occurred", http.StatusInternalServerError).WithCause(cause)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}
