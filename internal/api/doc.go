// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package api provides the HTTP layer for MovieLens Web.

The application is a single page. Everything the page shows is rendered on
the server by page sessions (see internal/websocket and internal/ui); this
package only serves the page shell, its static assets, the websocket that
carries a session, and operational endpoints.

Routes:

	GET /                page shell (rendered once from an embedded template)
	GET /static/*        app.js patch applier and style.css (embedded)
	GET /ws              websocket upgrade, one page session per connection
	GET /health/live     liveness probe
	GET /health/ready    readiness probe; checks the session hub and the
	                     recommendation API /health endpoint
	GET /metrics         Prometheus metrics

Middleware Stack:

Every route gets request IDs, real IP extraction, panic recovery, security
headers and CORS (go-chi/cors). Each route group then adds its own per-IP
rate limit (go-chi/httprate) and Prometheus instrumentation. The page group
is gzip compressed.

JSON responses (probes and errors) use a common envelope:

	{
	  "success": true,
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "duration_ms": 1}
	}

Errors replace data with {"code": "...", "message": "..."}.

Usage Example:

	handler, err := api.NewHandler(client, hub, cfg)
	if err != nil {
	    return err
	}
	router := api.NewRouter(handler, &cfg.Security)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
