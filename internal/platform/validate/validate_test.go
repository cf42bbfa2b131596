// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "StoreHub", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("password", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			appError := apperr.As(v.Err())
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			assert.Equal(t, "password", appError.Details[0].Field)
		})
	}
}

/*
TestValidator_LoginEmail checks the login email shape: plain local@domain.tld,
surrounding whitespace tolerated.
*/
func TestValidator_LoginEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"plain", "cso1@x.com", true},
		{"mixed_case", "Admin@Gmail.com", true},
		{"plus_and_dots", "first.last+tag@mail.example.co", true},
		{"surrounding_space", "  user@x.com ", true},
		{"no_dot_in_domain", "user@localhost", false},
		{"display_name", "User <user@x.com>", false},
		{"short_tld", "user@x.c", false},
		{"missing_local", "@x.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.LoginEmail("email", tt.email)

			assert.Equal(t, !tt.isValid, v.HasErrors())
			assert.Equal(t, tt.isValid, validate.IsLoginEmail(tt.email))
		})
	}
}

func TestValidator_LengthsCountRunes(t *testing.T) {
	v := &validate.Validator{}
	v.MaxLen("name", "Nguyễn", 6).MinLen("name", "Nguyễn", 6)
	assert.False(t, v.HasErrors())

	v.MaxLen("name", "Nguyễn Văn", 6)
	assert.True(t, v.HasErrors())
}

func TestValidator_Positive(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Positive("function_id", 3).HasErrors())
	assert.True(t, (&validate.Validator{}).Positive("function_id", 0).HasErrors())
	assert.True(t, (&validate.Validator{}).Positive("function_id", -1).HasErrors())
}

func TestValidator_ChainAccumulates(t *testing.T) {
	err := (&validate.Validator{}).
		Required("name", "").
		LoginEmail("email", "not-an-email").
		MinLen("password", "short", 8).
		Err()

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 3)
	assert.Equal(t, []string{"name", "email", "password"}, []string{
		appError.Details[0].Field, appError.Details[1].Field, appError.Details[2].Field,
	})
}

func TestFieldFailure(t *testing.T) {
	appError := validate.FieldFailure("token", "This field is required")
	assert.Equal(t, 400, appError.HTTPStatus)
	assert.Equal(t, []apperr.FieldError{{Field: "token", Message: "This field is required"}}, appError.Details)
}
