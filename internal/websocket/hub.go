// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package websocket

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/metrics"
	"github.com/tomtom215/movielens-web/internal/ui"
)

// ShutdownReason identifies why the hub is shutting down.
// This enables clear observability in logs and metrics.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled indicates the parent context was canceled.
	// This is the normal graceful shutdown path (e.g., SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Hub tracks the open page sessions and holds what each new session needs
// to build its controller.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	// quit is closed while the hub is not running so that sessions
	// never block on a stopped hub.
	quit    chan struct{}
	running atomic.Bool

	backend  ui.Backend
	renderer *ui.Renderer
	cfg      config.UIConfig
}

// NewHub creates a new Hub. Sessions it accepts talk to backend and render
// with renderer.
func NewHub(backend ui.Backend, renderer *ui.Renderer, cfg *config.UIConfig) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		quit:       make(chan struct{}),
		backend:    backend,
		renderer:   renderer,
		cfg:        *cfg,
	}
}

// RunWithContext processes session registration until ctx is canceled,
// then closes every open session. It is designed for suture supervision
// and can be restarted after it returns.
//
// DETERMINISM: Context cancellation is checked before lifecycle events so
// that a hub being shut down never accepts another session.
func (h *Hub) RunWithContext(ctx context.Context) error {
	h.mu.Lock()
	select {
	case <-h.quit:
		h.quit = make(chan struct{})
	default:
	}
	h.mu.Unlock()
	h.running.Store(true)

	for {
		// Priority 1: Check for shutdown (non-blocking)
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		// Priority 2: Wait for lifecycle events or shutdown
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WSConnections.Set(float64(count))
			logging.Info().Str("session_id", client.sessionID).Int("total_clients", count).Msg("websocket client connected")

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WSConnections.Set(float64(count))
			logging.Info().Str("session_id", client.sessionID).Int("total_clients", count).Msg("websocket client disconnected")
		}
	}
}

// stopped returns a channel that is closed once the current run has ended.
func (h *Hub) stopped() <-chan struct{} {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.quit
}

// register hands c to the running hub. It reports false when the hub has
// stopped.
func (h *Hub) register(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.stopped():
		return false
	}
}

func (h *Hub) unregister(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.stopped():
	}
}

// logGracefulShutdown closes all clients and logs structured shutdown
// information. ctx.Err() is not logged as an error because cancellation is
// the expected way to stop.
func (h *Hub) logGracefulShutdown(ctx context.Context) {
	h.running.Store(false)
	clientCount := h.GetClientCount()

	h.closeAllClients()

	h.mu.Lock()
	close(h.quit)
	h.mu.Unlock()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
}

// getShutdownReason determines the shutdown reason from the context error.
func getShutdownReason(ctx context.Context) ShutdownReason {
	switch ctx.Err() {
	case context.Canceled:
		return ShutdownReasonContextCanceled
	case context.DeadlineExceeded:
		return ShutdownReasonContextDeadline
	default:
		return ShutdownReasonContextCanceled
	}
}

// closeAllClients closes every open session.
// DETERMINISM: Closes clients in ID order to ensure consistent shutdown behavior.
func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	for _, client := range clients {
		client.closeSend()
		delete(h.clients, client)
	}
	metrics.WSConnections.Set(0)
}

// Running reports whether the hub is accepting sessions.
func (h *Hub) Running() bool {
	return h.running.Load()
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
