// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package main is the entry point for the MovieLens Web server.

MovieLens Web serves the single-page movie recommender front end. The page
talks to this server over one WebSocket per tab; every user gesture becomes
an event on a per-session controller, which calls the MovieLens recommender
API and answers with DOM patches rendered from server-side templates.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("movielens-web")
	├── StartupSupervisor ("startup-layer")
	│   └── Backend probe (one-shot health check)
	├── SessionSupervisor ("session-layer")
	│   └── Session hub (one controller per WebSocket)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (page, static assets, /ws, health, metrics)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Backend client: base URL resolved from PUBLIC_HOST, circuit breaker
 4. Fragment renderer: html/template fragments for every page region
 5. Session hub: WebSocket sessions and their controllers
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8080
	PUBLIC_HOST=localhost        # localhost or 127.0.0.1 selects BACKEND_LOCAL_URL
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Recommender API
	BACKEND_LOCAL_URL=http://localhost:5000/api
	BACKEND_DEPLOYED_URL=https://movielens-api-wmq9.onrender.com/api
	BACKEND_IMAGE_BASE_URL=http://localhost:5000/insights/

	# Page behaviour
	SEARCH_DEBOUNCE=300ms
	SEARCH_MIN_CHARS=2
	SIMILAR_TOP_K=10

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Closes every WebSocket session and cancels its backend calls
 3. Waits for in-flight requests (HTTP_SHUTDOWN_TIMEOUT)
 4. Reports any services that failed to stop

# Usage Examples

Development against a local recommender:

	export LOG_FORMAT=console
	go run ./cmd/server

Against the hosted recommender:

	export PUBLIC_HOST=movies.example.com
	./movielens-web

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/ui: Session controller and page fragments
*/
package main
