// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes the JSON envelopes shared by every endpoint.
//
// Success bodies are {"data": ...} (plus "meta" for lists); failures are
// {"error", "code", "details"?, "redirect"?}. Responses carry principal and
// session data, so none of them may be cached.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/ctxutil"
	"github.com/taibuivan/storehub/pkg/pagination"
)

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type PaginatedEnvelope struct {
	Data any             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

type ErrorEnvelope struct {
	Error    string              `json:"error"`
	Code     string              `json:"code"`
	Details  []apperr.FieldError `json:"details,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// JSON writes payload with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	header := writer.Header()
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Cache-Control", "no-store")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

func Paginated(writer http.ResponseWriter, data any, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, Meta: metadata})
}

func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

/*
Error renders err as an [ErrorEnvelope].

Errors that are not an [*apperr.AppError] become a generic 500. Every 5xx is
logged with its cause through the request logger; 4xx responses are left to
the domain layer, which logs its own rejections.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:    appError.Message,
		Code:     appError.Code,
		Details:  appError.Details,
		Redirect: appError.Redirect,
	})
}
