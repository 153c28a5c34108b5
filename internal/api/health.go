// Copyright (c) 2026 Book Alchemy. All rights reserved.

package api

import (
	"log/slog"
	"net/http"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
// A nil checker is skipped.
type HealthDependencies struct {
	// CheckDatabase pings the SQLite database.
	CheckDatabase func() error

	// CheckCache pings the Redis client backing the ISBN cache.
	CheckCache func() error
}

// CheckResult is one entry of the readiness report.
type CheckResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ReadinessPayload is the /ready response body.
type ReadinessPayload struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// msgCheckFailed is reported for a failing dependency; the cause is only logged.
const msgCheckFailed = "unavailable"

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, _ *http.Request) {
	checks := []struct {
		name  string
		check func() error
	}{
		{"sqlite", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	}

	payload := ReadinessPayload{Status: "ready", Checks: make([]CheckResult, 0, len(checks))}
	for _, c := range checks {
		if c.check == nil {
			continue
		}

		result := CheckResult{Name: c.name, IsOK: true}
		if err := c.check(); err != nil {
			result.IsOK = false
			result.Error = msgCheckFailed
			payload.Status = "degraded"
			handler.logger.Error("readiness_check_failed", slog.String("dependency", c.name), slog.Any("error", err))
		}
		payload.Checks = append(payload.Checks, result)
	}

	if payload.Status != "ready" {
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{Data: payload})
		return
	}
	respond.OK(writer, payload)
}
