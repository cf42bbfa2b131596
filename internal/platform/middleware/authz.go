// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/ctxutil"
	"github.com/taibuivan/storehub/internal/platform/respond"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

// ErrSessionNotFound is returned by a [SessionLoader] when the token is valid
// but the session has expired or been destroyed.
var ErrSessionNotFound = errors.New("session not found")

// SessionLoader resolves a session cookie value into the identity it carries.
// auth.SessionManager is the production implementation.
type SessionLoader interface {
	Resolve(context context.Context, token string) (*sec.Identity, error)
}

// LoadSession reads the session cookie and attaches the identity to the request.
//
// # Flow
//  1. No cookie: request proceeds as anonymous.
//  2. Cookie present: resolve it via [SessionLoader].
//  3. Invalid, expired or unknown sessions proceed as anonymous; the stale
//     cookie is left for the login or logout handler to overwrite.
//  4. Store failures are logged and the request proceeds as anonymous.
func LoadSession(loader SessionLoader, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(cookieName)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			identity, err := loader.Resolve(request.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, sec.ErrInvalidSessionToken) {
					ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "session_resolve_failed",
						slog.Any("error", err),
					)
				}
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(
				slog.String("principal_kind", string(identity.Kind)),
				slog.Int64("principal_id", identity.PrincipalID),
			))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that carry no session.
//
// # Usage
//
// Must be registered in the router AFTER [LoadSession].
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin only lets the configured administrator through.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())

		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		if !identity.IsAdmin() {
			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RequireOfficerAccess guards a back-office section by officer role tag.
//
// # Flow
//  1. Anonymous requests get HTTP 401.
//  2. The administrator passes every section.
//  3. Officers pass only when their function carries the tag; others get HTTP 403.
func RequireOfficerAccess(tag sec.RoleTag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !identity.CanAccess(tag) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
