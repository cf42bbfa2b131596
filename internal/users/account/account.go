// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles customer self-registration and email verification.

New customers start as pending and unverified. The verification link sent
after registration activates the account. A lost or expired link is replaced
through the resend endpoint, which is where the login form's AccountPending
and AccountNotVerified remediation links lead.

# Architecture

  - Entities: Account (customer view without credentials).
  - Storage: PostgreSQL for the users table, Redis for one-time tokens.
  - Delivery: [VerificationNotifier] hands the raw token to the outbound channel.
*/
package account

import (
	"context"
	"time"
)

// # Domain Entities

// Account is the public view of a customer row.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Verified  bool      `json:"verified"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccount is the insert payload. PasswordHash is salt ‖ PBKDF2 digest.
type NewAccount struct {
	Name         string
	Email        string
	PasswordHash []byte
	Status       string
	Role         string
}

// # Repository Contracts

// AccountRepository defines the persistence contract for customer accounts.
type AccountRepository interface {

	/*
		Create inserts a new customer and returns the stored row.

		Parameters:
		  - context: context.Context
		  - account: NewAccount

		Returns:
		  - *Account: The stored account
		  - error: apperr.Conflict on duplicate email, or database errors
	*/
	Create(context context.Context, account NewAccount) (*Account, error)

	/*
		Activate marks the account verified and active.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Account: The updated account
		  - error: dberr.ErrNotFound or database errors
	*/
	Activate(context context.Context, id int64) (*Account, error)

	/*
		FindUnverified returns the account with the given normalized email
		that has not confirmed its address and is still pending or active.

		Parameters:
		  - context: context.Context
		  - email: string (already trimmed and lower-cased)

		Returns:
		  - *Account: The matching account
		  - error: dberr.ErrNotFound or database errors
	*/
	FindUnverified(context context.Context, email string) (*Account, error)
}

// VerificationTokenRepository stores one-time email verification tokens.
type VerificationTokenRepository interface {
	Set(context context.Context, token string, accountID int64, ttl time.Duration) error
	Get(context context.Context, token string) (int64, error)
	Delete(context context.Context, token string) error
}

// VerificationNotifier delivers the verification token to the customer.
type VerificationNotifier interface {
	SendVerification(context context.Context, account *Account, token string) error
}
