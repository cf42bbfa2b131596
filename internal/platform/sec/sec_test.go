// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/storehub/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestUserPassword_RoundTrip verifies salt ‖ digest layout and verification.
*/
func TestUserPassword_RoundTrip(t *testing.T) {
	stored, err := sec.HashUserPassword("s3cret-pass")
	require.NoError(t, err)

	assert.Len(t, stored, sec.UserSaltLength+sec.UserKeyLength)
	assert.True(t, sec.VerifyUserPassword("s3cret-pass", stored))
	assert.False(t, sec.VerifyUserPassword("s3cret-pasS", stored))
	assert.False(t, sec.VerifyUserPassword("", stored))
}

/*
TestUserPassword_SaltIsRandom checks that equal passwords never produce equal rows.
*/
func TestUserPassword_SaltIsRandom(t *testing.T) {
	first, err := sec.HashUserPassword("same")
	require.NoError(t, err)
	second, err := sec.HashUserPassword("same")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(first, second))
	assert.True(t, sec.VerifyUserPassword("same", first))
	assert.True(t, sec.VerifyUserPassword("same", second))
}

/*
TestUserPassword_Malformed ensures truncated rows are rejected instead of panicking.
*/
func TestUserPassword_Malformed(t *testing.T) {
	assert.False(t, sec.VerifyUserPassword("x", nil))
	assert.False(t, sec.VerifyUserPassword("x", make([]byte, sec.UserSaltLength)))
}

/*
TestOfficerPassword_Bcrypt checks the bcrypt helpers.
*/
func TestOfficerPassword_Bcrypt(t *testing.T) {
	hash, err := sec.HashPassword("officer-pass")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("officer-pass", hash))
	assert.False(t, sec.CheckPasswordHash("other", hash))
	assert.False(t, sec.CheckPasswordHash("officer-pass", "not-a-bcrypt-hash"))
}

/*
TestSessionTokenSigner covers signing, tampering and expiry.
*/
func TestSessionTokenSigner(t *testing.T) {
	signer, err := sec.NewSessionTokenSigner(testSecret, "storehub.app")
	require.NoError(t, err)

	t.Run("round_trip", func(t *testing.T) {
		token, err := signer.Sign("session-1", time.Now().Add(time.Hour))
		require.NoError(t, err)

		id, err := signer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "session-1", id)
	})

	t.Run("tampered", func(t *testing.T) {
		token, err := signer.Sign("session-1", time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = signer.Verify(token + "x")
		assert.ErrorIs(t, err, sec.ErrInvalidSessionToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign("session-1", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, err = signer.Verify(token)
		assert.ErrorIs(t, err, sec.ErrInvalidSessionToken)
	})

	t.Run("other_secret", func(t *testing.T) {
		other, err := sec.NewSessionTokenSigner("fedcba9876543210fedcba9876543210", "storehub.app")
		require.NoError(t, err)

		token, err := other.Sign("session-1", time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = signer.Verify(token)
		assert.ErrorIs(t, err, sec.ErrInvalidSessionToken)
	})
}

/*
TestNewSessionTokenSigner_ShortSecret rejects weak secrets.
*/
func TestNewSessionTokenSigner_ShortSecret(t *testing.T) {
	_, err := sec.NewSessionTokenSigner("short", "storehub.app")
	assert.Error(t, err)
}

/*
TestIdentity_CanAccess verifies the admin override and the officer tag match.
*/
func TestIdentity_CanAccess(t *testing.T) {
	admin := &sec.Identity{Kind: sec.KindAdmin}
	payments := &sec.Identity{Kind: sec.KindOfficer, Role: string(sec.RoleAccessPayments)}
	customer := &sec.Identity{Kind: sec.KindUser, Role: sec.RoleCustomer}

	assert.True(t, admin.CanAccess(sec.RoleAccessUnits))
	assert.True(t, payments.CanAccess(sec.RoleAccessPayments))
	assert.False(t, payments.CanAccess(sec.RoleAccessUnits))
	assert.False(t, customer.CanAccess(sec.RoleAccessPayments))

	var anonymous *sec.Identity
	assert.False(t, anonymous.CanAccess(sec.RoleAccessPayments))
}

/*
TestRoleTag_IsKnown checks the fixed five-tag enumeration.
*/
func TestRoleTag_IsKnown(t *testing.T) {
	assert.Len(t, sec.RoleTags, 5)
	assert.True(t, sec.RoleAccessWarehouses.IsKnown())
	assert.False(t, sec.RoleTag("access_everything").IsKnown())
}
