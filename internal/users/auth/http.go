// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/middleware"
	requestutil "github.com/taibuivan/storehub/internal/platform/request"
	"github.com/taibuivan/storehub/internal/platform/respond"
	"github.com/taibuivan/storehub/internal/platform/validate"
)

// # Definitions & Constructors

// CookieConfig holds the session cookie attributes.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Handler implements the login, logout and session endpoints.
//
// # Scope
//
// This layer is strictly responsible for transport concerns: decoding the
// form, translating [*Failure] into its public error, and managing the cookie.
type Handler struct {
	gateway    *Gateway
	sessions   *SessionManager
	redirector *Redirector
	cookie     CookieConfig
	throttle   func(http.Handler) http.Handler
}

// NewHandler constructs a new [Handler]. throttle guards the login endpoint.
func NewHandler(
	gateway *Gateway,
	sessions *SessionManager,
	redirector *Redirector,
	cookie CookieConfig,
	throttle func(http.Handler) http.Handler,
) *Handler {
	return &Handler{
		gateway:    gateway,
		sessions:   sessions,
		redirector: redirector,
		cookie:     cookie,
		throttle:   throttle,
	}
}

// Routes returns a [chi.Router] configured with the authentication routes.
//
// # Endpoints
//   - POST /login   : Authenticates and opens a session.
//   - POST /logout  : Destroys the current session.
//   - GET  /session : Returns the current identity.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(handler.throttle).Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.With(middleware.RequireSession).Get("/session", handler.session)

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Next     string `json:"next"`
}

/*
Login authenticates the credential pair and opens a session.

POST /api/v1/auth/login

Description: Runs the gateway, replaces any session the caller already had,
sets the signed session cookie and returns the landing path.

Request:
  - Body: loginRequest (Email, Password, Next)

Response:
  - 200: {redirect, principal}
  - 400: VALIDATION_ERROR: Malformed email or missing password
  - 401: INVALID_CREDENTIALS: Unknown email, wrong password or store outage
  - 403: ACCOUNT_PENDING / ACCOUNT_NOT_VERIFIED / ACCOUNT_INACTIVE with redirect
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Passwords are opaque; whitespace is a valid password.
	validator := &validate.Validator{}
	validator.Custom(FieldPassword, input.Password == "", "This field is required")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	principal, err := handler.gateway.Authenticate(request.Context(), input.Email, input.Password)
	if err != nil {
		if failure := AsFailure(err); failure != nil {
			respond.Error(writer, request, failure.Public())
			return
		}
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	session, token, err := handler.sessions.Create(request.Context(), handler.currentSessionID(request), principal)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	handler.setCookie(writer, token, session.ExpiresAt)

	respond.OK(writer, map[string]any{
		FieldRedirect:  handler.redirector.Resolve(principal, input.Next),
		FieldPrincipal: principal,
	})
}

/*
Logout terminates the current session.

POST /api/v1/auth/logout

Description: Deletes the server-side session (if any) and clears the cookie.
Calling it without a session is not an error.

Response:
  - 204: No Content
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	err := handler.sessions.Destroy(request.Context(), handler.currentSessionID(request))

	handler.clearCookie(writer)

	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.NoContent(writer)
}

/*
Session returns the identity of the current session.

GET /api/v1/auth/session

Response:
  - 200: sec.Identity
  - 401: UNAUTHORIZED: No session
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, identity)
}

// # Cookie Handling

// currentSessionID returns the id carried by a valid session cookie, or "".
func (handler *Handler) currentSessionID(request *http.Request) string {
	if identity := requestutil.Identity(request); identity != nil {
		return identity.SessionID
	}

	cookie, err := request.Cookie(handler.cookie.Name)
	if err != nil {
		return ""
	}
	return handler.sessions.SessionID(cookie.Value)
}

func (handler *Handler) setCookie(writer http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     handler.cookie.Name,
		Value:    token,
		Path:     constants.SessionCookiePath,
		Expires:  expiresAt,
		Secure:   handler.cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     handler.cookie.Name,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Secure:   handler.cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
