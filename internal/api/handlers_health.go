// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/movielens-web/internal/logging"
)

// readinessProbeTimeout bounds the backend health call made by HealthReady.
const readinessProbeTimeout = 5 * time.Second

// LiveStatus is the liveness probe payload.
type LiveStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}

// ReadyStatus is the readiness probe payload.
type ReadyStatus struct {
	Ready            bool    `json:"ready"`
	SessionsRunning  bool    `json:"sessions_running"`
	ActiveSessions   int     `json:"active_sessions"`
	BackendConnected bool    `json:"backend_connected"`
	BackendURL       string  `json:"backend_url,omitempty"`
	BackendMessage   string  `json:"backend_message,omitempty"`
	BackendError     string  `json:"backend_error,omitempty"`
	BreakerState     string  `json:"breaker_state,omitempty"`
	Uptime           float64 `json:"uptime"`
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 only when the session hub is running and the recommendation
// API answers its health endpoint; 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := ReadyStatus{
		Uptime: time.Since(h.startTime).Seconds(),
	}

	if h.wsHub != nil {
		status.SessionsRunning = h.wsHub.Running()
		status.ActiveSessions = h.wsHub.GetClientCount()
	}

	if h.backend == nil {
		status.BackendError = ErrBackendNotConfigured.Error()
	} else {
		status.BackendURL = h.backend.BaseURL()
		status.BreakerState = h.backend.BreakerState()

		ctx, cancel := context.WithTimeout(r.Context(), readinessProbeTimeout)
		health, err := h.backend.Health(ctx)
		cancel()
		if err != nil {
			status.BackendError = err.Error()
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness probe: recommendation API unreachable")
		} else {
			status.BackendConnected = true
			status.BackendMessage = health.Message
		}
	}

	status.Ready = status.SessionsRunning && status.BackendConnected

	statusCode := http.StatusOK
	if !status.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).Status(statusCode, status.Ready, status)
}
