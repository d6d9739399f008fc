// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package middleware provides HTTP middleware shared by the page, websocket and
probe routes.

Key Components:

  - RequestID: UUID-based request tracking; the ID is echoed in the
    X-Request-ID response header and attached to the logging context.
  - PrometheusMetrics: request count, latency and in-flight gauges labelled
    by chi route pattern.

Both are plain func(http.Handler) http.Handler values and are mounted with
chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics must run inside the chi router so the route pattern is known
when the request completes.
*/
package middleware
