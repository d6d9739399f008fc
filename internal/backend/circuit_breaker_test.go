// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func breakerClient(t *testing.T, status int) (*Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	t.Cleanup(server.Close)

	cfg := testConfig()
	cfg.BreakerEnabled = true
	cfg.BreakerMaxRequests = 1
	cfg.BreakerInterval = time.Minute
	cfg.BreakerTimeout = time.Minute
	cfg.BreakerMinRequests = 3
	cfg.BreakerFailureRatio = 0.6

	return NewClient(cfg, server.URL), &calls
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	client, calls := breakerClient(t, http.StatusInternalServerError)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.InsightStats(ctx); !errors.As(err, new(*APIError)) {
			t.Fatalf("call %d: error = %v, want *APIError", i, err)
		}
	}
	if client.BreakerState() != "open" {
		t.Fatalf("BreakerState() = %q, want open", client.BreakerState())
	}

	_, err := client.InsightStats(ctx)
	if !IsConnectionError(err) {
		t.Fatalf("error = %v, want *ConnectionError when open", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error should wrap ErrOpenState, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("backend saw %d calls, want 3 (open breaker must not call)", got)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	client, calls := breakerClient(t, http.StatusBadRequest)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.SimilarMovies(ctx, 1, 10)
		apiErr, ok := AsAPIError(err)
		if !ok || apiErr.Message != "boom" {
			t.Fatalf("call %d: error = %v", i, err)
		}
	}
	if client.BreakerState() != "closed" {
		t.Errorf("BreakerState() = %q, want closed", client.BreakerState())
	}
	if got := calls.Load(); got != 5 {
		t.Errorf("backend saw %d calls, want 5", got)
	}
}

func TestIsBreakerSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"bad request", &APIError{StatusCode: 400}, true},
		{"server error", &APIError{StatusCode: 503}, false},
		{"decode error", &APIError{StatusCode: 200, Err: errors.New("eof")}, false},
		{"connection", &ConnectionError{Err: errors.New("refused")}, false},
	}
	for _, tt := range tests {
		if got := isBreakerSuccess(tt.err); got != tt.want {
			t.Errorf("%s: isBreakerSuccess() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	if stateToString(gobreaker.StateHalfOpen) != "half-open" || stateToFloat(gobreaker.StateOpen) != 2 {
		t.Error("unexpected state conversion")
	}
}
