// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package services

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/models"
)

// HealthProber matches the recommendation API client's health check.
type HealthProber interface {
	Health(ctx context.Context) (*models.HealthStatus, error)
	BaseURL() string
}

// BackendProbeService checks the recommendation API once at startup and
// logs the outcome. A failed probe is not fatal: the page still serves and
// each user action reports its own connection error.
type BackendProbeService struct {
	prober  HealthProber
	timeout time.Duration
	name    string
}

// NewBackendProbeService creates the startup probe. timeout bounds the single
// health request.
func NewBackendProbeService(prober HealthProber, timeout time.Duration) *BackendProbeService {
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	return &BackendProbeService{
		prober:  prober,
		timeout: timeout,
		name:    "backend-probe",
	}
}

// Serve implements suture.Service. It always returns suture.ErrDoNotRestart
// so the probe runs exactly once per process.
func (b *BackendProbeService) Serve(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	health, err := b.prober.Health(probeCtx)
	if err != nil {
		logging.Error().Err(err).Str("backend_url", b.prober.BaseURL()).Msg("API Connection Failed")
		return suture.ErrDoNotRestart
	}

	logging.Info().Str("backend_url", b.prober.BaseURL()).Str("message", health.Message).Msg("API Connected")
	return suture.ErrDoNotRestart
}

func (b *BackendProbeService) String() string {
	return b.name
}
