// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package config provides centralized configuration management for MovieLens Web.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The first existing file among
CONFIG_PATH, config.yaml, config.yml and /etc/movielens-web/config.{yaml,yml}
is used.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - PUBLIC_HOST: Host browsers load the page from (default: localhost)

Backend:
  - BACKEND_LOCAL_URL: API origin used when PUBLIC_HOST is localhost
  - BACKEND_DEPLOYED_URL: API origin used for every other host
  - BACKEND_IMAGE_BASE_URL: Static origin of insight gallery images
  - BACKEND_TIMEOUT: Per request timeout (default: 30s)
  - BACKEND_BREAKER_*: Circuit breaker tuning

Page sessions:
  - SEARCH_DEBOUNCE: Quiet period before a search fires (default: 300ms)
  - SEARCH_MIN_CHARS: Shortest query that is looked up (default: 2)
  - SIMILAR_TOP_K: Similar movies per selection (default: 10)
  - WS_EVENTS_PER_SECOND, WS_EVENT_BURST: Per session event throttle

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - WS_ALLOWED_ORIGINS: Comma-separated websocket origins (default: same origin)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
