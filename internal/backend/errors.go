// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package backend

import (
	"errors"
	"fmt"
)

// ConnectionError means no response was received from the backend.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("backend %s unreachable: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError means the backend answered with a non-success status, or with a
// body that could not be decoded.
type APIError struct {
	Endpoint   string
	StatusCode int

	// Message is the backend-provided explanation; empty when none was sent.
	Message string

	// Err is set when a 2xx body failed to decode.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: invalid response: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("backend %s returned %d: %s", e.Endpoint, e.StatusCode, e.MessageOr("no message"))
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// MessageOr returns the backend message, or fallback when the backend sent none.
func (e *APIError) MessageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// IsConnectionError reports whether err (or anything it wraps) is a *ConnectionError.
func IsConnectionError(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// AsAPIError returns the *APIError inside err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// outcome classifies err for metrics labels.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsConnectionError(err):
		return "connection_error"
	default:
		return "api_error"
	}
}
