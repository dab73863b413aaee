// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Check reports whether one backing service is reachable.
type Check func(ctx context.Context) error

// HealthDependencies holds the checks run by /ready. A nil check means the
// backend is not configured and the in-memory fallback is in use.
type HealthDependencies struct {
	CheckDatabase Check
	CheckCache    Check
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

type checkResult struct {
	Name    string `json:"name"`
	Backend string `json:"backend"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// readiness runs every configured check. Any failure turns the response into
// a 503 with status "degraded".
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	results := []checkResult{
		handler.run(ctx, "storage", "postgres", handler.dependencies.CheckDatabase),
		handler.run(ctx, "cache", "redis", handler.dependencies.CheckCache),
	}

	status, code := "ready", http.StatusOK
	for _, result := range results {
		if !result.OK {
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}

	respond.JSON(writer, code, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}

func (handler *healthHandler) run(ctx context.Context, name, backend string, check Check) checkResult {
	if check == nil {
		return checkResult{Name: name, Backend: "memory", OK: true}
	}

	result := checkResult{Name: name, Backend: backend, OK: true}
	if err := check(ctx); err != nil {
		result.OK = false
		result.Error = err.Error()
		handler.logger.ErrorContext(ctx, "readiness_check_failed",
			slog.String("dependency", backend),
			slog.Any("error", err),
		)
	}
	return result
}
