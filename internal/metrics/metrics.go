// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - HTTP endpoint latency and throughput
// - Recommendation API calls made on behalf of page sessions
// - Page sessions (websocket connections) and the events they send
// - Search debouncing and dashboard loads
// - The backend circuit breaker

var (
	// HTTP Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Recommendation Backend Metrics
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total number of recommendation API calls",
		},
		[]string{"endpoint", "outcome"}, // outcome: "ok", "api_error", "connection_error"
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Recommendation API call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // cold starts on free hosting are slow
		},
		[]string{"endpoint"},
	)

	// Page Session Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of open page sessions",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of view patches sent to browsers",
		},
	)

	WSMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of page events received, by event type",
		},
		[]string{"type"},
	)

	WSEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_events_dropped_total",
			Help: "Page events discarded before reaching a controller",
		},
		[]string{"reason"}, // "rate_limited", "invalid", "queue_full"
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// UI Flow Metrics
	SearchLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_lookups_total",
			Help: "Search keystrokes by fate",
		},
		[]string{"result"}, // "fired", "superseded", "too_short", "stale"
	)

	FlowOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ui_flow_outcomes_total",
			Help: "Outcome of user-triggered flows",
		},
		[]string{"flow", "outcome"}, // flow: recommendations, similar, insights
	)

	DashboardLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insights_dashboard_loads_total",
			Help: "Insights dashboard load attempts",
		},
		[]string{"result"}, // "loaded", "failed", "cached"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an HTTP request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight HTTP requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBackendCall records one recommendation API call
func RecordBackendCall(endpoint, outcome string, duration time.Duration) {
	BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	BackendRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordFlow records the outcome of a recommendation, similarity or insights flow
func RecordFlow(flow, outcome string) {
	FlowOutcomes.WithLabelValues(flow, outcome).Inc()
}
