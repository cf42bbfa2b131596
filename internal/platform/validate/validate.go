// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects field-level input errors into a single
// VALIDATION_ERROR [apperr.AppError].
//
// Handlers run it before touching any store, so services only see requests
// whose shape is already valid.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/storehub/internal/platform/apperr"
)

const msgFailed = "Validation failed"

var (
	// loginEmailRegex is the local@domain.tld shape accepted by the login form.
	loginEmailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator accumulates failures through a chain of rules. Not safe for
// concurrent use; create one per request.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	return v.Custom(field, strings.TrimSpace(value) == "", "This field is required")
}

// MaxLen counts runes, not bytes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) > max, fmt.Sprintf("Maximum %d characters", max))
}

func (v *Validator) MinLen(field, value string, min int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) < min, fmt.Sprintf("Minimum %d characters", min))
}

// Positive fails for zero and negative identifiers.
func (v *Validator) Positive(field string, value int64) *Validator {
	return v.Custom(field, value <= 0, "Must be a positive integer")
}

/*
LoginEmail fails if the trimmed value is not a plain local@domain.tld address.

Display names and quoted local parts are rejected, and the domain must
contain at least one dot.
*/
func (v *Validator) LoginEmail(field, value string) *Validator {
	return v.Custom(field, !IsLoginEmail(value), "Must be a valid email address")
}

// IsLoginEmail reports whether the trimmed value has the login email shape.
func IsLoginEmail(value string) bool {
	return loginEmailRegex.MatchString(strings.TrimSpace(value))
}

// Custom records message against field when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// Err returns the accumulated failures, or nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(msgFailed, v.errs...)
}

func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// FieldFailure builds a validation error for a single field.
func FieldFailure(field, message string) *apperr.AppError {
	return apperr.ValidationError(msgFailed, apperr.FieldError{Field: field, Message: message})
}
