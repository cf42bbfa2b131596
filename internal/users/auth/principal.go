// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/storehub/internal/platform/sec"
)

// # Domain Entities

// Principal is an identity that passed one of the three credential checks.
//
// Exactly one of the variants is produced per successful login:
//   - Admin: configured credential, no database record (ID is zero).
//   - Officer: a CSO officer row; Role is the function's role tag.
//   - User: a customer row; Role is the account role.
type Principal struct {
	Kind         sec.PrincipalKind `json:"kind"`
	ID           int64             `json:"id,omitempty"`
	Name         string            `json:"name,omitempty"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	FunctionName string            `json:"function,omitempty"`
}

// Identity copies the principal into the per-request session view.
func (principal *Principal) Identity(sessionID string, createdAt time.Time) sec.Identity {
	return sec.Identity{
		SessionID:    sessionID,
		Kind:         principal.Kind,
		PrincipalID:  principal.ID,
		Name:         principal.Name,
		Email:        principal.Email,
		Role:         principal.Role,
		FunctionName: principal.FunctionName,
		CreatedAt:    createdAt,
	}
}

// adminPrincipal builds the singleton admin identity.
func adminPrincipal(email string) *Principal {
	return &Principal{
		Kind:  sec.KindAdmin,
		Name:  "Administrator",
		Email: email,
		Role:  string(sec.KindAdmin),
	}
}

// # Account States

// User account status values stored in the users table.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// # Email Normalization

// NormalizeEmail trims and lower-cases an email for comparison and lookup.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
