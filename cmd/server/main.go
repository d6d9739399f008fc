// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/movielens-web/internal/api"
	"github.com/tomtom215/movielens-web/internal/backend"
	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/supervisor"
	"github.com/tomtom215/movielens-web/internal/supervisor/services"
	"github.com/tomtom215/movielens-web/internal/ui"
	ws "github.com/tomtom215/movielens-web/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting MovieLens Web with supervisor tree")

	// The public host decides between the local and the deployed backend.
	baseURL := backend.ResolveBaseURL(cfg.Server.PublicHost, cfg.Backend.LocalURL, cfg.Backend.DeployedURL)
	client := backend.NewClient(&cfg.Backend, baseURL)
	logging.Info().
		Str("backend_url", baseURL).
		Str("public_host", cfg.Server.PublicHost).
		Dur("debounce", cfg.UI.DebounceDelay).
		Msg("Configuration loaded")

	renderer, err := ui.NewRenderer()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse fragment templates")
	}

	hub := ws.NewHub(client, renderer, &cfg.UI)

	handler, err := api.NewHandler(client, hub, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize HTTP handlers")
	}
	router := api.NewRouter(handler, &cfg.Security)

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	tree.AddStartupService(services.NewBackendProbeService(client, cfg.Backend.Timeout))
	tree.AddSessionService(services.NewSessionHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
