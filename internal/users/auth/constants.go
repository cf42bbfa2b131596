// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Field Identifiers

// Field names for validation and JSON payloads in the authentication domain.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldNext      = "next"
	FieldRedirect  = "redirect"
	FieldPrincipal = "principal"
)

// # Redirect Constraints

const (
	// maxDeepLinkLength bounds the caller-supplied "next" path.
	maxDeepLinkLength = 2048
)

// # Timing Equalization

// Inputs for the decoy hash checks that run when no record matches, so that
// "unknown email" costs the same as "wrong password". Neither value can ever
// authenticate anyone.
const (
	decoyPassword = "storehub-decoy-password"
)
