// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/models"
	ws "github.com/tomtom215/movielens-web/internal/websocket"
)

// closeGrace bounds the close frame sent to a session the hub refused.
const closeGrace = time.Second

// BackendProber is the part of the recommendation API client the probes use.
type BackendProber interface {
	Health(ctx context.Context) (*models.HealthStatus, error)
	BaseURL() string
	BreakerState() string
}

// Handler serves the page, its assets, the session websocket and probes.
type Handler struct {
	backend   BackendProber
	wsHub     *ws.Hub
	security  config.SecurityConfig
	page      *pageRenderer
	startTime time.Time
}

// NewHandler creates a Handler. The page template is parsed here so a
// broken template fails startup instead of the first request.
func NewHandler(backend BackendProber, hub *ws.Hub, cfg *config.Config) (*Handler, error) {
	page, err := newPageRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{
		backend:   backend,
		wsHub:     hub,
		security:  cfg.Security,
		page:      page,
		startTime: time.Now(),
	}, nil
}

// WebSocket upgrades the request into a page session.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil || !h.wsHub.Running() {
		logging.Ctx(r.Context()).Warn().Err(ErrHubNotRunning).Msg("WebSocket connection rejected")
		NewResponseWriter(w, r).ServiceUnavailable("WebSocket service unavailable")
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	if !client.Start() {
		// The hub stopped between the check above and registration.
		msg := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace))
		_ = conn.Close()
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins. Same-origin
// upgrades from the served page are always accepted; other origins must be
// listed in AllowedWSOrigins.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Browsers always send Origin on websocket upgrades.
	if origin == "" {
		logging.Ctx(r.Context()).Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}

	for _, allowedOrigin := range h.security.AllowedWSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Ctx(r.Context()).Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
