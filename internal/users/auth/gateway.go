// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the authentication gateway and session routing core.

It verifies an (email, password) pair against three disjoint principal stores,
each with its own hashing scheme, and turns the winner into a session and a
post-login redirect.

# Architecture

  - Gateway: Admin → Officer → User credential checks, first match wins.
  - Redirector: Maps an authenticated principal to its landing path.
  - SessionManager: Atomic session replacement backed by [SessionStore].
  - Handler: JSON endpoints for login, logout and the current session.

# Security

"No such user" and "wrong password" produce the same response and run the
same hash work. Store outages are logged distinctly but answered as invalid
credentials.
*/
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/ctxutil"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/platform/validate"
)

// # Definitions & Constructors

// AccountHints are the remediation links attached to account-state failures.
type AccountHints struct {
	Pending     string
	NotVerified string
	Inactive    string
}

// GatewayConfig carries the configured admin credential and remediation links.
type GatewayConfig struct {
	AdminEmail    string
	AdminPassword string
	Hints         AccountHints
}

// Gateway authenticates credentials against the admin, officer and user stores.
//
// # Concurrency
//
// A Gateway is safe for concurrent use. Last-login updates run in background
// goroutines tracked by an internal WaitGroup; call [Gateway.Wait] during
// shutdown to let them finish.
type Gateway struct {
	officers OfficerStore
	users    UserStore

	adminEmail    []byte
	adminPassword []byte
	hints         AccountHints

	// Hashes of decoyPassword, checked when no record matches.
	decoyOfficerHash string
	decoyUserHash    []byte

	now        func() time.Time
	background sync.WaitGroup
}

/*
NewGateway constructs a [Gateway].

Description: Precomputes the decoy hashes used to equalize timing between
unknown emails and wrong passwords.

Parameters:
  - officers: OfficerStore
  - users: UserStore
  - config: GatewayConfig

Returns:
  - *Gateway: The ready gateway
  - error: Hashing failures
*/
func NewGateway(officers OfficerStore, users UserStore, config GatewayConfig) (*Gateway, error) {
	decoyOfficerHash, err := sec.HashPassword(decoyPassword)
	if err != nil {
		return nil, fmt.Errorf("auth_gateway_decoy_failed: %w", err)
	}

	decoyUserHash, err := sec.HashUserPassword(decoyPassword)
	if err != nil {
		return nil, fmt.Errorf("auth_gateway_decoy_failed: %w", err)
	}

	return &Gateway{
		officers:         officers,
		users:            users,
		adminEmail:       []byte(NormalizeEmail(config.AdminEmail)),
		adminPassword:    []byte(config.AdminPassword),
		hints:            config.Hints,
		decoyOfficerHash: decoyOfficerHash,
		decoyUserHash:    decoyUserHash,
		now:              time.Now,
	}, nil
}

// # Authentication

// loginAttempt tracks the state machine of one authenticate call.
type loginAttempt struct {
	state    LoginState
	degraded []string
	cause    error
	logger   *slog.Logger
}

func (attempt *loginAttempt) advance(context context.Context, next LoginState) {
	attempt.logger.DebugContext(context, "auth_state_changed",
		slog.String("from", string(attempt.state)),
		slog.String("to", string(next)),
	)
	attempt.state = next
}

// degrade records a store failure for the current step. The step then counts as "no match".
func (attempt *loginAttempt) degrade(context context.Context, err error) {
	attempt.logger.WarnContext(context, "auth_step_store_unavailable",
		slog.String("step", string(attempt.state)),
		slog.Any("error", err),
	)
	attempt.degraded = append(attempt.degraded, string(attempt.state))
	if attempt.cause == nil {
		attempt.cause = err
	}
}

/*
Authenticate verifies the credential pair and returns the matching principal.

Description: Runs the admin, officer and user checks in that fixed order and
returns on the first success or specific failure. Every rejection is a
[*Failure]; callers convert it with [Failure.Public] before responding.

Parameters:
  - context: context.Context
  - email: string (raw form input)
  - password: string (opaque)

Returns:
  - *Principal: The authenticated identity
  - error: *Failure describing the rejection
*/
func (gateway *Gateway) Authenticate(context context.Context, email, password string) (*Principal, error) {
	attempt := &loginAttempt{state: StateIdle, logger: ctxutil.GetLogger(context)}

	// 1. Validate before any store access
	attempt.advance(context, StateValidating)
	if !validate.IsLoginEmail(email) {
		return nil, gateway.reject(context, attempt, &Failure{Kind: FailureInvalidInput})
	}
	normalized := NormalizeEmail(email)

	// 2. Configured admin credential
	attempt.advance(context, StateAdminAuth)
	if gateway.matchAdmin(normalized, password) {
		return gateway.accept(context, attempt, adminPrincipal(normalized)), nil
	}

	// 3. CSO officer
	attempt.advance(context, StateOfficerAuth)
	if principal := gateway.checkOfficer(context, attempt, normalized, password); principal != nil {
		return gateway.accept(context, attempt, principal), nil
	}

	// 4. Customer
	attempt.advance(context, StateUserAuth)
	principal, failure := gateway.checkUser(context, attempt, normalized, password)
	if failure != nil {
		return nil, gateway.reject(context, attempt, failure)
	}

	return gateway.accept(context, attempt, principal), nil
}

// matchAdmin compares both halves of the admin pair in constant time.
func (gateway *Gateway) matchAdmin(email, password string) bool {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), gateway.adminEmail)
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), gateway.adminPassword)
	return emailMatch&passwordMatch == 1
}

// checkOfficer returns nil on miss, mismatch or store failure alike.
func (gateway *Gateway) checkOfficer(context context.Context, attempt *loginAttempt, email, password string) *Principal {
	record, err := gateway.officers.FindActiveOfficer(context, email)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			attempt.degrade(context, err)
		}
		sec.CheckPasswordHash(password, gateway.decoyOfficerHash)
		return nil
	}

	// Officer or function deactivated.
	if !record.IsActive || !record.FunctionActive {
		sec.CheckPasswordHash(password, gateway.decoyOfficerHash)
		return nil
	}

	if !sec.CheckPasswordHash(password, record.PasswordHash) {
		return nil
	}

	gateway.touchLastLogin(context, sec.KindOfficer, record.ID)

	return &Principal{
		Kind:         sec.KindOfficer,
		ID:           record.ID,
		Name:         record.Name,
		Email:        NormalizeEmail(record.Email),
		Role:         string(record.FunctionRole),
		FunctionName: record.FunctionName,
	}
}

// checkUser applies the account-state rules before the password check.
func (gateway *Gateway) checkUser(context context.Context, attempt *loginAttempt, email, password string) (*Principal, *Failure) {
	record, err := gateway.users.FindUser(context, email)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			attempt.degrade(context, err)
		}
		sec.VerifyUserPassword(password, gateway.decoyUserHash)
		return nil, &Failure{Kind: FailureInvalidCredentials}
	}

	switch {
	case record.Status == StatusPending:
		return nil, &Failure{Kind: FailureAccountPending, Redirect: gateway.hints.Pending}
	case !record.Verified:
		return nil, &Failure{Kind: FailureAccountNotVerified, Redirect: gateway.hints.NotVerified}
	case record.Status != StatusActive:
		return nil, &Failure{Kind: FailureAccountInactive, Redirect: gateway.hints.Inactive}
	}

	if !sec.VerifyUserPassword(password, record.PasswordHash) {
		return nil, &Failure{Kind: FailureInvalidCredentials}
	}

	gateway.touchLastLogin(context, sec.KindUser, record.ID)

	return &Principal{
		Kind:  sec.KindUser,
		ID:    record.ID,
		Name:  record.Name,
		Email: NormalizeEmail(record.Email),
		Role:  record.Role,
	}, nil
}

func (gateway *Gateway) accept(context context.Context, attempt *loginAttempt, principal *Principal) *Principal {
	stage := attempt.state
	attempt.advance(context, StateAuthenticated)

	attempt.logger.InfoContext(context, "auth_login_succeeded",
		slog.String("principal_kind", string(principal.Kind)),
		slog.Int64("principal_id", principal.ID),
		slog.String("stage", string(stage)),
		slog.Any("degraded_steps", attempt.degraded),
	)

	return principal
}

// reject finalizes a failure. A generic rejection that followed a store
// outage is reclassified as StoreUnavailable so logs keep the distinction.
func (gateway *Gateway) reject(context context.Context, attempt *loginAttempt, failure *Failure) *Failure {
	failure.Stage = attempt.state
	if failure.Kind == FailureInvalidCredentials && attempt.cause != nil {
		failure.Kind = FailureStoreUnavailable
		failure.Cause = attempt.cause
	}

	attempt.advance(context, StateRejected)

	attempt.logger.InfoContext(context, "auth_login_rejected",
		slog.String("reason", string(failure.Kind)),
		slog.String("stage", string(failure.Stage)),
		slog.Any("degraded_steps", attempt.degraded),
	)

	return failure
}

// # Last Login Tracking

// touchLastLogin records the login time in the background. Failures are
// logged and never affect the login result.
func (gateway *Gateway) touchLastLogin(requestContext context.Context, kind sec.PrincipalKind, id int64) {
	logger := ctxutil.GetLogger(requestContext)
	detached := context.WithoutCancel(requestContext)
	at := gateway.now()

	gateway.background.Add(1)
	go func() {
		defer gateway.background.Done()

		writeContext, cancel := context.WithTimeout(detached, constants.BackgroundWriteTimeout)
		defer cancel()

		var err error
		switch kind {
		case sec.KindOfficer:
			err = gateway.officers.TouchOfficerLogin(writeContext, id, at)
		case sec.KindUser:
			err = gateway.users.TouchUserLogin(writeContext, id, at)
		}

		if err != nil {
			logger.WarnContext(writeContext, "auth_last_login_update_failed",
				slog.String("principal_kind", string(kind)),
				slog.Int64("principal_id", id),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until every pending last-login update has finished.
func (gateway *Gateway) Wait() {
	gateway.background.Wait()
}
