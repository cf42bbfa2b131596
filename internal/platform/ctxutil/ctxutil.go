// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores the per-request values placed by the middleware
// chain: request ID, request logger and session identity.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/storehub/internal/platform/sec"
)

// contextKey is unexported so no other package can collide with these keys.
type contextKey int

const (
	keyRequestID contextKey = iota
	keyLogger
	keyIdentity
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID returns "" outside the RequestID middleware.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger falls back to [slog.Default] so callers never nil-check.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func WithIdentity(ctx context.Context, identity *sec.Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, identity)
}

// GetIdentity returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *sec.Identity {
	identity, _ := ctx.Value(keyIdentity).(*sec.Identity)
	return identity
}
