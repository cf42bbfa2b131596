// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"errors"
	"net/http"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/validate"
)

// # Login States

// LoginState is a step of a single login attempt.
//
//	Idle → Validating → AdminAuth → OfficerAuth → UserAuth → {Authenticated, Rejected}
//
// Any step may jump straight to Authenticated or Rejected. Both are terminal
// for the request; the form itself returns to Idle for the next attempt.
type LoginState string

const (
	StateIdle          LoginState = "idle"
	StateValidating    LoginState = "validating"
	StateAdminAuth     LoginState = "admin_auth"
	StateOfficerAuth   LoginState = "officer_auth"
	StateUserAuth      LoginState = "user_auth"
	StateAuthenticated LoginState = "authenticated"
	StateRejected      LoginState = "rejected"
)

// # Failure Taxonomy

// FailureKind classifies a rejected login.
type FailureKind string

const (
	// FailureInvalidInput: malformed email, rejected before any store access.
	FailureInvalidInput FailureKind = "INVALID_INPUT"

	// FailureInvalidCredentials: unknown email or wrong password. Deliberately uninformative.
	FailureInvalidCredentials FailureKind = "INVALID_CREDENTIALS"

	// FailureAccountPending: customer account awaiting activation.
	FailureAccountPending FailureKind = "ACCOUNT_PENDING"

	// FailureAccountNotVerified: customer email not yet verified.
	FailureAccountNotVerified FailureKind = "ACCOUNT_NOT_VERIFIED"

	// FailureAccountInactive: customer account suspended or closed.
	FailureAccountInactive FailureKind = "ACCOUNT_INACTIVE"

	// FailureStoreUnavailable: the datastore failed. Internal only; reported as invalid credentials.
	FailureStoreUnavailable FailureKind = "STORE_UNAVAILABLE"
)

// Failure is the error returned by [Gateway.Authenticate] for every rejected attempt.
//
// # Security
//
// Kind, Stage and Cause are for server-side logging. Only [Failure.Public]
// may be sent to the client.
type Failure struct {
	Kind FailureKind
	// Redirect is the remediation link for account-state failures.
	Redirect string
	// Stage is the login state at which the attempt was rejected.
	Stage LoginState
	// Cause is the underlying storage error for FailureStoreUnavailable.
	Cause error
}

// Error implements the error interface.
func (failure *Failure) Error() string {
	if failure.Cause != nil {
		return string(failure.Kind) + ": " + failure.Cause.Error()
	}
	return string(failure.Kind)
}

// Unwrap exposes the storage cause to [errors.Is] and [errors.As].
func (failure *Failure) Unwrap() error { return failure.Cause }

// Public converts the failure into the client-facing error.
//
// Store outages are downgraded to invalid credentials so that an observer
// cannot tell a broken database from a wrong password.
func (failure *Failure) Public() *apperr.AppError {
	switch failure.Kind {
	case FailureInvalidInput:
		return validate.FieldFailure(FieldEmail, "Must be a valid email address")
	case FailureAccountPending:
		return apperr.New(string(FailureAccountPending), "Your account is awaiting activation", http.StatusForbidden).
			WithRedirect(failure.Redirect)
	case FailureAccountNotVerified:
		return apperr.New(string(FailureAccountNotVerified), "Please verify your email address before signing in", http.StatusForbidden).
			WithRedirect(failure.Redirect)
	case FailureAccountInactive:
		return apperr.New(string(FailureAccountInactive), "Your account is not active", http.StatusForbidden).
			WithRedirect(failure.Redirect)
	default:
		return errInvalidCredentials
	}
}

// errInvalidCredentials is the single response used for unknown emails, wrong
// passwords and store outages alike.
var errInvalidCredentials = apperr.New(string(FailureInvalidCredentials), "Invalid email or password", http.StatusUnauthorized)

// AsFailure extracts a [*Failure] from err's chain. It returns nil if not found.
func AsFailure(err error) *Failure {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}
	return nil
}
