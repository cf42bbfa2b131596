// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/taibuivan/storehub/internal/platform/middleware"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=store.go -destination=../../mocks/auth_store_mock.go -package=mocks

// ErrRecordNotFound is returned by stores when no row matches the lookup.
var ErrRecordNotFound = errors.New("auth: record not found")

// ErrSessionNotFound is returned by session stores for unknown or expired sessions.
var ErrSessionNotFound = middleware.ErrSessionNotFound

// # Credential Records

// OfficerRecord is an officer row joined with its function.
type OfficerRecord struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	IsActive       bool
	FunctionName   string
	FunctionRole   sec.RoleTag
	FunctionActive bool
}

// UserRecord is a customer row. PasswordHash is salt ‖ PBKDF2 digest.
type UserRecord struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash []byte
	Status       string
	Verified     bool
	Role         string
}

// # Data Access Contracts

// OfficerStore is the officer side of the datastore contract.
type OfficerStore interface {

	/*
		FindActiveOfficer returns the officer with the given normalized email.

		Description: Implementations should filter on the officer and function
		active flags, but may return an inactive row. The gateway checks
		IsActive and FunctionActive again and treats such a row as no match.

		Parameters:
		  - context: context.Context
		  - email: string (already trimmed and lower-cased)

		Returns:
		  - *OfficerRecord: Hydrated record
		  - error: ErrRecordNotFound or database errors
	*/
	FindActiveOfficer(context context.Context, email string) (*OfficerRecord, error)

	/*
		TouchOfficerLogin records the last successful login time.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - at: time.Time

		Returns:
		  - error: Database errors
	*/
	TouchOfficerLogin(context context.Context, id int64, at time.Time) error
}

// UserStore is the customer side of the datastore contract.
type UserStore interface {

	/*
		FindUser returns the customer with the given normalized email, whatever its status.

		Parameters:
		  - context: context.Context
		  - email: string (already trimmed and lower-cased)

		Returns:
		  - *UserRecord: Hydrated record
		  - error: ErrRecordNotFound or database errors
	*/
	FindUser(context context.Context, email string) (*UserRecord, error)

	/*
		TouchUserLogin records the last successful login time.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - at: time.Time

		Returns:
		  - error: Database errors
	*/
	TouchUserLogin(context context.Context, id int64, at time.Time) error
}

// SessionStore persists sessions keyed by their opaque id.
type SessionStore interface {

	/*
		Replace removes previousID (if any) and stores session in one atomic step,
		so no reader ever observes a mix of the old and new session.

		Parameters:
		  - context: context.Context
		  - previousID: string (may be empty)
		  - session: *Session
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Replace(context context.Context, previousID string, session *Session, ttl time.Duration) error

	/*
		Get returns the session stored under id.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Session: Hydrated session
		  - error: ErrSessionNotFound or retrieval failures
	*/
	Get(context context.Context, id string) (*Session, error)

	/*
		Delete removes the session. Deleting a missing session is not an error.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
