// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

// # Session Entity

// Session is the server-side state behind one session cookie.
//
// ID never leaves the server except inside the signed cookie, and is never
// persisted in the value itself.
type Session struct {
	ID        string    `json:"-"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenSigner wraps session ids into tamper-proof cookie values.
type TokenSigner interface {
	Sign(sessionID string, expiresAt time.Time) (string, error)
	Verify(token string) (string, error)
}

// # Session Manager

// SessionManager creates, resolves and destroys sessions.
type SessionManager struct {
	store  SessionStore
	signer TokenSigner
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager constructs a [SessionManager].
func NewSessionManager(store SessionStore, signer TokenSigner, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, signer: signer, ttl: ttl, now: time.Now}
}

/*
Create opens a session for principal and discards the caller's previous one.

Description: The previous session is deleted and the new one written in a
single atomic store operation, so concurrent readers see either the old
session or the new one, never a mix.

Parameters:
  - context: context.Context
  - previousID: string (session id from the caller's current cookie, may be empty)
  - principal: *Principal

Returns:
  - *Session: The stored session
  - string: Signed cookie value
  - error: Generation, persistence or signing failures
*/
func (manager *SessionManager) Create(context context.Context, previousID string, principal *Principal) (*Session, string, error) {
	id, err := sec.GenerateSecureToken(constants.SessionIDLength)
	if err != nil {
		return nil, "", fmt.Errorf("auth_session_id_failed: %w", err)
	}

	now := manager.now()
	session := &Session{
		ID:        id,
		Principal: *principal,
		CreatedAt: now,
		ExpiresAt: now.Add(manager.ttl),
	}

	token, err := manager.signer.Sign(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, "", fmt.Errorf("auth_session_sign_failed: %w", err)
	}

	if err := manager.store.Replace(context, previousID, session, manager.ttl); err != nil {
		return nil, "", fmt.Errorf("auth_session_create_failed: %w", err)
	}

	return session, token, nil
}

/*
Resolve turns a cookie value into the identity of its session.

Parameters:
  - context: context.Context
  - token: string (signed cookie value)

Returns:
  - *sec.Identity: Per-request view of the session
  - error: sec.ErrInvalidSessionToken, ErrSessionNotFound or store failures
*/
func (manager *SessionManager) Resolve(context context.Context, token string) (*sec.Identity, error) {
	id, err := manager.signer.Verify(token)
	if err != nil {
		return nil, err
	}

	session, err := manager.store.Get(context, id)
	if err != nil {
		return nil, err
	}

	identity := session.Principal.Identity(id, session.CreatedAt)
	return &identity, nil
}

// SessionID extracts the session id from a cookie value. It returns an empty
// string for missing, forged or expired tokens.
func (manager *SessionManager) SessionID(token string) string {
	if token == "" {
		return ""
	}
	id, err := manager.signer.Verify(token)
	if err != nil {
		return ""
	}
	return id
}

/*
Destroy removes the session. An empty id or an unknown session is not an error.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Store failures
*/
func (manager *SessionManager) Destroy(context context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := manager.store.Delete(context, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("auth_session_destroy_failed: %w", err)
	}

	return nil
}

// TTL returns the configured session lifetime.
func (manager *SessionManager) TTL() time.Duration {
	return manager.ttl
}
