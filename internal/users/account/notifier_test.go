// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/storehub/internal/users/account"
)

func TestLogNotifier(t *testing.T) {
	buffer := &bytes.Buffer{}
	notifier := account.NewLogNotifier(slog.New(slog.NewJSONHandler(buffer, nil)), "/account/verify")

	err := notifier.SendVerification(context.Background(), pendingAccount(), "abc123")
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), "account_verification_link_issued")
	assert.Contains(t, buffer.String(), "/account/verify?token=abc123")
}
