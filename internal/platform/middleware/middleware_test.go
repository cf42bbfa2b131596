// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/storehub/internal/platform/middleware"
)

type corsConfig struct {
	development bool
	suffix      string
}

func (cfg corsConfig) IsDevelopment() bool  { return cfg.development }
func (cfg corsConfig) OriginSuffix() string { return cfg.suffix }

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		cfg     corsConfig
		origin  string
		allowed bool
	}{
		{"apex", corsConfig{suffix: "storehub.app"}, "https://storehub.app", true},
		{"subdomain", corsConfig{suffix: "storehub.app"}, "https://admin.storehub.app", true},
		{"lookalike_domain", corsConfig{suffix: "storehub.app"}, "https://evilstorehub.app", false},
		{"other_domain", corsConfig{suffix: "storehub.app"}, "https://example.com", false},
		{"development_any", corsConfig{development: true}, "http://localhost:5173", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(tt.cfg)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(corsConfig{suffix: "storehub.app"})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	request := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/login", nil)
	request.Header.Set("Origin", "https://storehub.app")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, recorder.Header().Get("X-Request-ID"), 36)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "req-123")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "req-123", recorder.Header().Get("X-Request-ID"))
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(slog.Default())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred","code":"INTERNAL_ERROR"}`, recorder.Body.String())
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.5:41234"
	assert.Equal(t, "10.0.0.5", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "203.0.113.4")
	assert.Equal(t, "203.0.113.4", middleware.RealIP(request))
}
