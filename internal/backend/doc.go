// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package backend is the HTTP client for the MovieLens recommendation API.

The base URL is chosen once at startup by ResolveBaseURL: pages served from
localhost talk to the local development API, every other host talks to the
deployed API. Each call is attempted exactly once.

# Errors

Failures are classified into two types so callers can pick the right UI:

  - *ConnectionError: no response was received (DNS, refused, timeout, or the
    circuit breaker is open)
  - *APIError: a response arrived with a non-2xx status, or a 2xx body could
    not be decoded; Message carries the backend's "error" (or "message") field

Use errors.As to tell them apart:

	movies, err := client.SimilarMovies(ctx, id, 10)
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
	    // explain that the movie lacks genre/tag metadata
	}

# Circuit Breaker

When enabled, calls run through a sony/gobreaker breaker. Only connection
errors and 5xx responses count as failures: a 4xx such as "not enough tag
data" is a valid answer about the movie, not a sign the API is down. An open
breaker fails fast with a *ConnectionError and never retries.
*/
package backend
