// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package websocket carries page sessions between the browser and the UI
controllers.

Every page load opens one websocket. The connection becomes a Client, which
owns a ui.Controller for that page. The browser sends user events; the
controller answers with view patches that the page script applies to the
DOM. Nothing is shared between sessions.

Key Components:

  - Hub: tracks open sessions and closes them all on shutdown
  - Client: one connection, its controller, and its read/write goroutines
  - Event: typed message from the page

Architecture:

	browser ──events──▶ readPump ──▶ ui.Controller ──patches──▶ send ──▶ writePump ──▶ browser

Each client runs three goroutines:
  - readPump: decodes and validates events, applies the per-session rate limit
  - writePump: encodes patches, sends pings
  - the controller loop

Event Types:

	{"type": "search",       "data": {"query": "toy st"}}
	{"type": "selectMovie",  "data": {"movieId": 1, "title": "Toy Story (1995)"}}
	{"type": "similar",      "data": {"movieId": 1, "title": "Toy Story (1995)"}}
	{"type": "clickOutside"}
	{"type": "recommend",    "data": {"genres": ["Comedy"], "agePreference": "", "popularity": "", "topN": 10, "minRating": null}}
	{"type": "loadInsights"}
	{"type": "scrollTo",     "data": {"section": "insights"}}
	{"type": "ping"}

Patches are ui.Patch values, e.g.

	{"op": "html", "target": "recommendations-results", "html": "..."}
	{"op": "control", "target": "load-insights-btn", "disabled": true, "label": "Loading..."}

Connection Lifecycle:

 1. The HTTP handler upgrades the request and calls NewClient
 2. Start registers the client with the hub; a stopped hub rejects it
 3. Controller, readPump and writePump start
 4. The page closes: readPump cancels the session context, stopping the
    controller and its in-flight backend calls, and unregisters the client
 5. The hub closes the send channel; writePump sends a close frame

Thread Safety:

Sessions share nothing but the hub. A client's send channel is guarded so
that a controller finishing after the session closed drops its patches
instead of panicking. Excess inbound events beyond the configured rate are
dropped and counted in websocket_events_dropped_total.

Configuration:

  - writeWait: 10 seconds (time allowed to write a message)
  - pongWait: 60 seconds (time allowed to read a pong)
  - pingPeriod: 54 seconds (must be < pongWait)
  - maxMessageSize: 64 KB
  - ui.events_per_second / ui.event_burst: per-session event limit

See Also:

  - github.com/gorilla/websocket: Underlying WebSocket library
  - internal/ui: the controller and patch format
  - internal/api: the /ws endpoint
*/
package websocket
