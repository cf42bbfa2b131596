// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/respond"
)

// DependencyCheck is a named probe run by the /ready endpoint.
type DependencyCheck struct {
	Name  string
	Check func(context context.Context) error
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	checks []DependencyCheck
	logger *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(logger *slog.Logger, checks ...DependencyCheck) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checks: checks, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

/*
readiness handles GET /ready (Readiness probe).

Every dependency is probed concurrently under [constants.ReadinessCheckTimeout].
A single failing probe turns the response into 503 "degraded"; the body still
lists every probe so operators see which one failed.
*/
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	context, cancel := context.WithTimeout(request.Context(), constants.ReadinessCheckTimeout)
	defer cancel()

	results := make([]checkResult, len(handler.checks))

	var group errgroup.Group
	for index, dependency := range handler.checks {
		group.Go(func() error {
			result := checkResult{Name: dependency.Name, IsOK: true}
			if err := dependency.Check(context); err != nil {
				result.IsOK = false
				result.Error = err.Error()
				handler.logger.Error("readiness_check_failed",
					slog.String("dependency", dependency.Name),
					slog.Any("error", err),
				)
			}
			results[index] = result
			return nil
		})
	}
	_ = group.Wait()

	responseStatus := "ready"
	httpStatus := http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			responseStatus = "degraded"
			httpStatus = http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	}})
}
