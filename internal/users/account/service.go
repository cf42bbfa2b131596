// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/storehub/internal/platform/dberr"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/users/auth"
)

// # Service Layer

// Service orchestrates customer registration and verification.
type Service struct {
	accountRepository AccountRepository
	tokenRepository   VerificationTokenRepository
	notifier          VerificationNotifier
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	accountRepo AccountRepository,
	tokenRepo VerificationTokenRepository,
	notifier VerificationNotifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		tokenRepository:   tokenRepo,
		notifier:          notifier,
		logger:            logger,
	}
}

// RegisterInput is the validated registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register creates a pending, unverified customer and issues a verification token.

Description: The password is stored as salt ‖ PBKDF2 digest, the same format
the login gateway verifies. Once the row exists the request succeeds: a token
that could not be stored or delivered is logged, and [Service.ResendVerification]
issues a fresh one.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: The created account
  - error: apperr.Conflict on duplicate email, or execution failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {
	passwordHash, err := sec.HashUserPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	created, err := service.accountRepository.Create(context, NewAccount{
		Name:         strings.TrimSpace(input.Name),
		Email:        auth.NormalizeEmail(input.Email),
		PasswordHash: passwordHash,
		Status:       auth.StatusPending,
		Role:         sec.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}

	if err := service.issueVerification(context, created); err != nil {
		service.logger.WarnContext(context, "account_verification_issue_failed",
			slog.Int64("account_id", created.ID),
			slog.Any("error", err),
		)
	}

	service.logger.InfoContext(context, "account_registered", slog.Int64("account_id", created.ID))

	return created, nil
}

/*
ResendVerification issues a new verification token for an unverified account.

Description: Unknown, already verified and deactivated emails return nil
without sending anything, indistinguishable from a sent link. Earlier tokens
stay valid until they expire.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Token store failures or database errors
*/
func (service *Service) ResendVerification(context context.Context, email string) error {
	pending, err := service.accountRepository.FindUnverified(context, auth.NormalizeEmail(email))
	if err != nil {
		if dberr.IsNotFound(err) {
			service.logger.InfoContext(context, "account_verification_resend_skipped")
			return nil
		}
		return err
	}

	if err := service.issueVerification(context, pending); err != nil {
		return err
	}

	service.logger.InfoContext(context, "account_verification_resent", slog.Int64("account_id", pending.ID))

	return nil
}

// issueVerification stores a fresh token for the account and hands it to the
// notifier. Only a token that never reached the store is an error; a failed
// delivery is logged.
func (service *Service) issueVerification(context context.Context, target *Account) error {
	token, err := sec.GenerateSecureToken(VerificationTokenBytes)
	if err != nil {
		return fmt.Errorf("account_service_token_failed: %w", err)
	}

	if err := service.tokenRepository.Set(context, token, target.ID, VerificationTokenTTL); err != nil {
		return fmt.Errorf("account_service_token_store_failed: %w", err)
	}

	if err := service.notifier.SendVerification(context, target, token); err != nil {
		service.logger.WarnContext(context, "account_verification_send_failed",
			slog.Int64("account_id", target.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

/*
Verify consumes a verification token and activates its account.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *Account: The activated account
  - error: apperr.NotFound for unknown or expired tokens, or execution failures
*/
func (service *Service) Verify(context context.Context, token string) (*Account, error) {
	accountID, err := service.tokenRepository.Get(context, token)
	if err != nil {
		return nil, err
	}

	activated, err := service.accountRepository.Activate(context, accountID)
	if err != nil {
		return nil, err
	}

	// The account is already active; a leftover token only expires later.
	if err := service.tokenRepository.Delete(context, token); err != nil {
		service.logger.WarnContext(context, "account_verify_token_delete_failed",
			slog.Int64("account_id", accountID),
			slog.Any("error", err),
		)
	}

	service.logger.InfoContext(context, "account_verified", slog.Int64("account_id", accountID))

	return activated, nil
}
