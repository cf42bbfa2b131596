// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/storehub/internal/platform/ctxutil"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0192f1d2-7c1e-7a00-8000-000000000001")
	assert.Equal(t, "0192f1d2-7c1e-7a00-8000-000000000001", ctxutil.GetRequestID(ctx))
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Same(t, logger, ctxutil.GetLogger(ctxutil.WithLogger(ctx, logger)))

	// A nil logger never escapes.
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctxutil.WithLogger(ctx, nil)))
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetIdentity(ctx))

	identity := &sec.Identity{
		SessionID:   "session-123",
		Kind:        sec.KindOfficer,
		PrincipalID: 7,
		Role:        string(sec.RoleAccessPayments),
	}

	retrieved := ctxutil.GetIdentity(ctxutil.WithIdentity(ctx, identity))
	require.NotNil(t, retrieved)
	assert.Same(t, identity, retrieved)
	assert.True(t, retrieved.CanAccess(sec.RoleAccessPayments))
}
