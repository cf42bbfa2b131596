// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/storehub/internal/mocks"
	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/users/account"
	"github.com/taibuivan/storehub/internal/users/auth"
)

type serviceFixture struct {
	service  *account.Service
	accounts *mocks.MockAccountRepository
	tokens   *mocks.MockVerificationTokenRepository
	notifier *mocks.MockVerificationNotifier
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	fixture := &serviceFixture{
		accounts: mocks.NewMockAccountRepository(ctrl),
		tokens:   mocks.NewMockVerificationTokenRepository(ctrl),
		notifier: mocks.NewMockVerificationNotifier(ctrl),
	}
	fixture.service = account.NewService(fixture.accounts, fixture.tokens, fixture.notifier,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	return fixture
}

func pendingAccount() *account.Account {
	return &account.Account{
		ID:       42,
		Name:     "Minh Le",
		Email:    "customer@x.com",
		Status:   auth.StatusPending,
		Verified: false,
		Role:     sec.RoleCustomer,
	}
}

/*
TestRegister_StoresLoginCompatibleHash registers a customer and checks that the
stored hash verifies with the scheme the login gateway uses.
*/
func TestRegister_StoresLoginCompatibleHash(t *testing.T) {
	fixture := newServiceFixture(t)

	var inserted account.NewAccount
	var issuedToken string

	fixture.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, newAccount account.NewAccount) (*account.Account, error) {
			inserted = newAccount
			return pendingAccount(), nil
		})
	fixture.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), int64(42), account.VerificationTokenTTL).
		DoAndReturn(func(_ context.Context, token string, _ int64, _ time.Duration) error {
			issuedToken = token
			return nil
		})
	fixture.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *account.Account, token string) error {
			assert.Equal(t, issuedToken, token)
			return nil
		})

	created, err := fixture.service.Register(context.Background(), account.RegisterInput{
		Name:     "  Minh Le ",
		Email:    " Customer@X.com",
		Password: "customer-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	assert.Equal(t, "Minh Le", inserted.Name)
	assert.Equal(t, "customer@x.com", inserted.Email)
	assert.Equal(t, auth.StatusPending, inserted.Status)
	assert.Equal(t, sec.RoleCustomer, inserted.Role)
	assert.True(t, sec.VerifyUserPassword("customer-pass-1", inserted.PasswordHash))
	assert.Len(t, issuedToken, account.VerificationTokenBytes*2)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Conflict("A record with the same unique value already exists"))

	_, err := fixture.service.Register(context.Background(), account.RegisterInput{
		Name: "Dup", Email: "customer@x.com", Password: "customer-pass-1",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestRegister_NotificationFailureKeepsAccount(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
	fixture.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), int64(42), gomock.Any()).Return(nil)
	fixture.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421"))

	created, err := fixture.service.Register(context.Background(), account.RegisterInput{
		Name: "Minh Le", Email: "customer@x.com", Password: "customer-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

/*
TestRegister_TokenStoreFailureKeepsAccount covers a token store outage after
the row was inserted: the account is still returned and a later resend can
issue the link.
*/
func TestRegister_TokenStoreFailureKeepsAccount(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
	fixture.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), int64(42), gomock.Any()).Return(errors.New("redis: connection refused"))

	created, err := fixture.service.Register(context.Background(), account.RegisterInput{
		Name: "Minh Le", Email: "customer@x.com", Password: "customer-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestResendVerification(t *testing.T) {
	fixture := newServiceFixture(t)

	var issuedToken string
	gomock.InOrder(
		fixture.accounts.EXPECT().FindUnverified(gomock.Any(), "customer@x.com").Return(pendingAccount(), nil),
		fixture.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), int64(42), account.VerificationTokenTTL).
			DoAndReturn(func(_ context.Context, token string, _ int64, _ time.Duration) error {
				issuedToken = token
				return nil
			}),
		fixture.notifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *account.Account, token string) error {
				assert.Equal(t, int64(42), target.ID)
				assert.Equal(t, issuedToken, token)
				return nil
			}),
	)

	require.NoError(t, fixture.service.ResendVerification(context.Background(), "  Customer@X.com "))
	assert.Len(t, issuedToken, account.VerificationTokenBytes*2)
}

func TestResendVerification_UnknownEmailIsSilent(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.accounts.EXPECT().FindUnverified(gomock.Any(), "nobody@x.com").Return(nil, apperr.NotFound("Resource"))

	assert.NoError(t, fixture.service.ResendVerification(context.Background(), "nobody@x.com"))
}

func TestResendVerification_Failures(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		fixture := newServiceFixture(t)
		fixture.accounts.EXPECT().FindUnverified(gomock.Any(), gomock.Any()).
			Return(nil, apperr.Internal(errors.New("pool closed")))

		assert.Error(t, fixture.service.ResendVerification(context.Background(), "customer@x.com"))
	})

	t.Run("token_store", func(t *testing.T) {
		fixture := newServiceFixture(t)
		fixture.accounts.EXPECT().FindUnverified(gomock.Any(), gomock.Any()).Return(pendingAccount(), nil)
		fixture.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), int64(42), gomock.Any()).Return(errors.New("redis: connection refused"))

		err := fixture.service.ResendVerification(context.Background(), "customer@x.com")
		assert.ErrorContains(t, err, "account_service_token_store_failed")
	})
}

func TestVerify(t *testing.T) {
	fixture := newServiceFixture(t)

	activated := pendingAccount()
	activated.Status = auth.StatusActive
	activated.Verified = true

	gomock.InOrder(
		fixture.tokens.EXPECT().Get(gomock.Any(), "tok").Return(int64(42), nil),
		fixture.accounts.EXPECT().Activate(gomock.Any(), int64(42)).Return(activated, nil),
		fixture.tokens.EXPECT().Delete(gomock.Any(), "tok").Return(nil),
	)

	result, err := fixture.service.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, auth.StatusActive, result.Status)
}

func TestVerify_UnknownToken(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.tokens.EXPECT().Get(gomock.Any(), "stale").Return(int64(0), apperr.NotFound("Verification token"))

	_, err := fixture.service.Verify(context.Background(), "stale")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}
