// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/storehub/internal/mocks"
	"github.com/taibuivan/storehub/internal/platform/middleware"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/users/auth"
)

const testCookieName = "storehub_session"

type handlerFixture struct {
	router   http.Handler
	signer   *sec.SessionTokenSigner
	officers *mocks.MockOfficerStore
	users    *mocks.MockUserStore
	sessions *mocks.MockSessionStore
	gateway  *auth.Gateway
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	officers := mocks.NewMockOfficerStore(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	sessionStore := mocks.NewMockSessionStore(ctrl)

	gateway, err := auth.NewGateway(officers, users, auth.GatewayConfig{
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
		Hints:         testHints,
	})
	require.NoError(t, err)

	signer := newSigner(t)
	manager := auth.NewSessionManager(sessionStore, signer, time.Hour)
	passthrough := func(next http.Handler) http.Handler { return next }

	handler := auth.NewHandler(gateway, manager, auth.NewRedirector(testRedirects()),
		auth.CookieConfig{Name: testCookieName, Secure: true}, passthrough)

	return &handlerFixture{
		router:   middleware.LoadSession(manager, testCookieName)(handler.Routes()),
		signer:   signer,
		officers: officers,
		users:    users,
		sessions: sessionStore,
		gateway:  gateway,
	}
}

func (fixture *handlerFixture) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func sessionCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin_Admin(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.sessions.EXPECT().Replace(gomock.Any(), "", gomock.Any(), time.Hour).Return(nil)

	recorder := fixture.do(http.MethodPost, "/login", `{"email":"Admin@Gmail.com","password":"admin-secret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeBody(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "/admin/analytics", data["redirect"])
	assert.Equal(t, "admin", data["principal"].(map[string]any)["kind"])

	cookie := sessionCookie(recorder)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.NotEmpty(t, cookie.Value)
}

func TestLogin_OfficerRedirectsByRole(t *testing.T) {
	fixture := newHandlerFixture(t)

	fixture.officers.EXPECT().FindActiveOfficer(gomock.Any(), "cso1@x.com").Return(officerRecord(t, sec.RoleAccessPayments), nil)
	fixture.officers.EXPECT().TouchOfficerLogin(gomock.Any(), int64(7), gomock.Any()).Return(nil)
	fixture.sessions.EXPECT().Replace(gomock.Any(), "", gomock.Any(), time.Hour).Return(nil)

	recorder := fixture.do(http.MethodPost, "/login", `{"email":"cso1@x.com","password":"officer-pass-1"}`)
	fixture.gateway.Wait()

	require.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "/admin/payments", data["redirect"])
}

func TestLogin_UserDeepLink(t *testing.T) {
	fixture := newHandlerFixture(t)

	fixture.officers.EXPECT().FindActiveOfficer(gomock.Any(), gomock.Any()).Return(nil, auth.ErrRecordNotFound)
	fixture.users.EXPECT().FindUser(gomock.Any(), "customer@x.com").Return(userRecord(t, auth.StatusActive, true), nil)
	fixture.users.EXPECT().TouchUserLogin(gomock.Any(), int64(42), gomock.Any()).Return(nil)
	fixture.sessions.EXPECT().Replace(gomock.Any(), "", gomock.Any(), time.Hour).Return(nil)

	recorder := fixture.do(http.MethodPost, "/login",
		`{"email":"customer@x.com","password":"customer-pass-1","next":"/units/12/book"}`)
	fixture.gateway.Wait()

	require.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "/units/12/book", data["redirect"])
}

/*
TestLogin_ReplacesPreviousSession passes the caller's current session id to the
store so the old slot is cleared in the same step as the new one is written.
*/
func TestLogin_ReplacesPreviousSession(t *testing.T) {
	fixture := newHandlerFixture(t)

	token, err := fixture.signer.Sign("old-session", time.Now().Add(time.Hour))
	require.NoError(t, err)

	fixture.sessions.EXPECT().Get(gomock.Any(), "old-session").Return(nil, auth.ErrSessionNotFound)
	fixture.sessions.EXPECT().Replace(gomock.Any(), "old-session", gomock.Any(), time.Hour).Return(nil)

	recorder := fixture.do(http.MethodPost, "/login", `{"email":"admin@gmail.com","password":"admin-secret"}`,
		&http.Cookie{Name: testCookieName, Value: token})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEqual(t, token, sessionCookie(recorder).Value)
}

/*
TestLogin_UniformRejection compares the raw response of an unknown email with
that of a known email and a wrong password.
*/
func TestLogin_UniformRejection(t *testing.T) {
	unknown := newHandlerFixture(t)
	unknown.officers.EXPECT().FindActiveOfficer(gomock.Any(), gomock.Any()).Return(nil, auth.ErrRecordNotFound)
	unknown.users.EXPECT().FindUser(gomock.Any(), "nobody@x.com").Return(nil, auth.ErrRecordNotFound)
	unknownResponse := unknown.do(http.MethodPost, "/login", `{"email":"nobody@x.com","password":"secret-1"}`)

	wrong := newHandlerFixture(t)
	wrong.officers.EXPECT().FindActiveOfficer(gomock.Any(), gomock.Any()).Return(nil, auth.ErrRecordNotFound)
	wrong.users.EXPECT().FindUser(gomock.Any(), "customer@x.com").Return(userRecord(t, auth.StatusActive, true), nil)
	wrongResponse := wrong.do(http.MethodPost, "/login", `{"email":"customer@x.com","password":"secret-1"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownResponse.Code)
	assert.Equal(t, unknownResponse.Code, wrongResponse.Code)
	assert.Equal(t, unknownResponse.Body.String(), wrongResponse.Body.String())
	assert.Nil(t, sessionCookie(unknownResponse))
	assert.Equal(t, "INVALID_CREDENTIALS", decodeBody(t, unknownResponse)["code"])
}

func TestLogin_AccountPending(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.officers.EXPECT().FindActiveOfficer(gomock.Any(), gomock.Any()).Return(nil, auth.ErrRecordNotFound)
	fixture.users.EXPECT().FindUser(gomock.Any(), gomock.Any()).Return(userRecord(t, auth.StatusPending, false), nil)

	recorder := fixture.do(http.MethodPost, "/login", `{"email":"customer@x.com","password":"customer-pass-1"}`)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "ACCOUNT_PENDING", body["code"])
	assert.Equal(t, "/account/pending", body["redirect"])
}

/*
TestLogin_WhitespacePassword signs in a customer whose password is eight
spaces. The handler must pass it to the gateway unchanged.
*/
func TestLogin_WhitespacePassword(t *testing.T) {
	fixture := newHandlerFixture(t)

	const spaces = "        "
	record := userRecord(t, auth.StatusActive, true)
	hash, err := sec.HashUserPassword(spaces)
	require.NoError(t, err)
	record.PasswordHash = hash

	fixture.officers.EXPECT().FindActiveOfficer(gomock.Any(), "customer@x.com").Return(nil, auth.ErrRecordNotFound)
	fixture.users.EXPECT().FindUser(gomock.Any(), "customer@x.com").Return(record, nil)
	fixture.users.EXPECT().TouchUserLogin(gomock.Any(), int64(42), gomock.Any()).Return(nil)
	fixture.sessions.EXPECT().Replace(gomock.Any(), "", gomock.Any(), time.Hour).Return(nil)

	recorder := fixture.do(http.MethodPost, "/login", `{"email":"customer@x.com","password":"`+spaces+`"}`)
	fixture.gateway.Wait()

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotNil(t, sessionCookie(recorder))
}

func TestLogin_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed_json", `{"email":`},
		{"malformed_email", `{"email":"not-an-email","password":"x"}`},
		{"missing_password", `{"email":"customer@x.com"}`},
		{"empty_password", `{"email":"customer@x.com","password":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newHandlerFixture(t)
			recorder := fixture.do(http.MethodPost, "/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestLogin_SessionStoreDown(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.sessions.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

	recorder := fixture.do(http.MethodPost, "/login", `{"email":"admin@gmail.com","password":"admin-secret"}`)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Nil(t, sessionCookie(recorder))
}

func TestLogout_Idempotent(t *testing.T) {
	fixture := newHandlerFixture(t)

	token, err := fixture.signer.Sign("abc", time.Now().Add(time.Hour))
	require.NoError(t, err)
	cookie := &http.Cookie{Name: testCookieName, Value: token}

	stored := &auth.Session{ID: "abc", Principal: auth.Principal{Kind: sec.KindAdmin, Email: adminEmail}}
	gomock.InOrder(
		fixture.sessions.EXPECT().Get(gomock.Any(), "abc").Return(stored, nil),
		fixture.sessions.EXPECT().Delete(gomock.Any(), "abc").Return(nil),
		fixture.sessions.EXPECT().Get(gomock.Any(), "abc").Return(nil, auth.ErrSessionNotFound),
		fixture.sessions.EXPECT().Delete(gomock.Any(), "abc").Return(nil),
	)

	first := fixture.do(http.MethodPost, "/logout", "", cookie)
	second := fixture.do(http.MethodPost, "/logout", "", cookie)
	third := fixture.do(http.MethodPost, "/logout", "")

	for _, recorder := range []*httptest.ResponseRecorder{first, second, third} {
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		cleared := sessionCookie(recorder)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	}
}

func TestSessionEndpoint(t *testing.T) {
	fixture := newHandlerFixture(t)

	token, err := fixture.signer.Sign("abc", time.Now().Add(time.Hour))
	require.NoError(t, err)

	stored := &auth.Session{
		ID:        "abc",
		Principal: auth.Principal{Kind: sec.KindUser, ID: 42, Email: "customer@x.com", Role: sec.RoleCustomer},
		CreatedAt: time.Now(),
	}
	fixture.sessions.EXPECT().Get(gomock.Any(), "abc").Return(stored, nil)

	recorder := fixture.do(http.MethodGet, "/session", "", &http.Cookie{Name: testCookieName, Value: token})
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeBody(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "user", data["kind"])
	assert.Equal(t, "customer@x.com", data["email"])
	assert.NotContains(t, recorder.Body.String(), `"abc"`)

	anonymous := fixture.do(http.MethodGet, "/session", "")
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
}
