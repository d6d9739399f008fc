// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package metrics provides Prometheus instrumentation for MovieLens Web.

All collectors are registered on the default registry via promauto and
exposed at /metrics by promhttp.

# Metric Families

HTTP surface:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Recommendation backend:
  - backend_requests_total{endpoint,outcome}
  - backend_request_duration_seconds{endpoint}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Page sessions:
  - websocket_connections
  - websocket_messages_sent_total, websocket_messages_received_total{type}
  - websocket_events_dropped_total{reason}, websocket_errors_total{error_type}
  - search_lookups_total{result}
  - ui_flow_outcomes_total{flow,outcome}
  - insights_dashboard_loads_total{result}

# Example PromQL

	# Share of similarity lookups ending in the "not enough metadata" panel
	sum(rate(ui_flow_outcomes_total{flow="similar",outcome="api_error"}[5m]))
	  / sum(rate(ui_flow_outcomes_total{flow="similar"}[5m]))

	# Keystrokes saved by debouncing
	rate(search_lookups_total{result="superseded"}[5m])
*/
package metrics
