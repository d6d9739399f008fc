// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package supervisor provides process supervision for MovieLens Web using suture v4.

# Overview

	RootSupervisor ("movielens-web")
	├── StartupSupervisor ("startup-layer")
	│   └── BackendProbeService (runs once)
	├── SessionSupervisor ("session-layer")
	│   └── SessionHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. The session hub can
fail and restart without taking the HTTP server down; browsers reconnect
their sessions on their own.

Supervisor events (start, stop, failure, backoff) are logged through
sutureslog, which takes a *slog.Logger. logging.NewSlogLogger provides one
backed by the application's zerolog logger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStartupService(services.NewBackendProbeService(client, cfg.Backend.Timeout))
	tree.AddSessionService(services.NewSessionHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
