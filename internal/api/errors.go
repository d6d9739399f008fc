// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import "errors"

// Common API errors
var (
	// ErrHubNotRunning indicates the session hub is stopped or not configured
	ErrHubNotRunning = errors.New("session hub is not running")

	// ErrBackendNotConfigured indicates no recommendation API client was supplied
	ErrBackendNotConfigured = errors.New("recommendation api client is not configured")
)
