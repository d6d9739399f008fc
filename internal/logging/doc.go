// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

// Package logging provides centralized zerolog-based structured logging.
//
// JSON output is the default; console output is available for development.
// Request IDs (HTTP) and session IDs (one per websocket page session) travel
// in the context and are attached by Ctx. An slog adapter routes supervisor
// events from sutureslog into the same stream.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Similar movies unavailable")
//
// Always terminate log chains with .Msg() or .Send().
package logging
