// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package services provides suture.Service wrappers for MovieLens Web components.

Each wrapper implements suture's context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, translating ListenAndServe to Serve
  - Graceful shutdown with a configurable timeout

Session Hub (SessionHubService):
  - Runs websocket.Hub.RunWithContext
  - Restartable; open sessions are closed when it stops

Backend Probe (BackendProbeService):
  - One-shot startup health check of the recommendation API
  - Logs "API Connected" or "API Connection Failed" and returns
    suture.ErrDoNotRestart
*/
package services
