// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and session token signing.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, cookie
// signing) from the domain logic. Each principal type keeps its own hashing
// scheme: bcrypt for officers, PBKDF2 for customers, plain equality for the
// configured admin.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSessionToken is returned for any token that fails signature, issuer or expiry checks.
var ErrInvalidSessionToken = errors.New("sec: invalid session token")

// SessionClaims is the payload of the signed session cookie.
//
// # Why sign an opaque id?
//
// The cookie only carries the session id. Signing it lets the middleware
// reject forged or tampered cookies without a Redis round-trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	SessionID string `json:"sid"`
}

// SessionTokenSigner signs and verifies session cookies using HS256.
type SessionTokenSigner struct {
	secret []byte
	issuer string
}

// NewSessionTokenSigner creates a signer from a shared secret.
func NewSessionTokenSigner(secret, issuer string) (*SessionTokenSigner, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: session secret must be at least 32 bytes, got %d", len(secret))
	}
	return &SessionTokenSigner{secret: []byte(secret), issuer: issuer}, nil
}

// Sign wraps a session id into a signed token expiring at expiresAt.
func (signer *SessionTokenSigner) Sign(sessionID string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    signer.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(signer.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature, issuer and expiry and returns the session id.
func (signer *SessionTokenSigner) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return signer.secret, nil
	}, jwt.WithIssuer(signer.issuer), jwt.WithExpirationRequired())

	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidSessionToken
	}

	return claims.SessionID, nil
}
