// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// # Customer Passwords (PBKDF2-HMAC-SHA256)
//
// Stored layout: salt (32 bytes) followed by the derived key (32 bytes).
// These parameters are fixed by existing rows and must not change.

const (
	// UserSaltLength is the byte length of the random salt prefix.
	UserSaltLength = 32

	// UserHashIterations is the PBKDF2 iteration count.
	UserHashIterations = 100_000

	// UserKeyLength is the byte length of the derived key (SHA-256 digest size).
	UserKeyLength = sha256.Size
)

// HashUserPassword derives a salted PBKDF2 key and returns salt ‖ key.
func HashUserPassword(plainTextPassword string) ([]byte, error) {
	salt := make([]byte, UserSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("sec: failed to generate salt: %w", err)
	}

	return append(salt, deriveUserKey(plainTextPassword, salt)...), nil
}

// VerifyUserPassword recomputes the key with the stored salt and compares it in constant time.
// Stored values that are too short to contain a salt never match.
func VerifyUserPassword(plainTextPassword string, stored []byte) bool {
	if len(stored) <= UserSaltLength {
		return false
	}

	salt := stored[:UserSaltLength]
	expected := stored[UserSaltLength:]

	derived := pbkdf2.Key([]byte(plainTextPassword), salt, UserHashIterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(derived, expected) == 1
}

// deriveUserKey runs PBKDF2-HMAC-SHA256 with the fixed parameters.
func deriveUserKey(plainTextPassword string, salt []byte) []byte {
	return pbkdf2.Key([]byte(plainTextPassword), salt, UserHashIterations, UserKeyLength, sha256.New)
}
