// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import "time"

// # Field Identifiers

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldMessage  = "message"
)

// # Policy

const (
	// VerificationTokenTTL is how long a verification link stays valid.
	VerificationTokenTTL = 24 * time.Hour

	// VerificationTokenBytes is the entropy of a verification token.
	VerificationTokenBytes = 32

	// MinPasswordLength applies to self-registered customers only.
	MinPasswordLength = 8

	MaxNameLength = 120
)
