// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package websocket

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/metrics"
	"github.com/tomtom215/movielens-web/internal/ui"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // 64 KB, page events are small
	sendBufferSize = 256
)

// clientIDCounter generates unique, monotonically increasing IDs for clients.
// DETERMINISM: This ensures clients can be closed in a consistent order.
var clientIDCounter atomic.Uint64

// Client is one page session: a websocket connection and the controller
// driving that page.
type Client struct {
	id        uint64
	sessionID string
	hub       *Hub
	conn      *websocket.Conn

	// send carries view patches to writePump. Guarded by mu so a controller
	// finishing late never writes to a closed channel.
	send   chan ui.Patch
	mu     sync.Mutex
	closed bool

	controller *ui.Controller
	limiter    *rate.Limiter
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewClient creates a session for conn with a unique deterministic ID.
func NewClient(hub *Hub, conn *websocket.Conn, opts ...ui.Option) *Client {
	sessionID := logging.GenerateSessionID()
	ctx, cancel := context.WithCancel(logging.ContextWithSessionID(context.Background(), sessionID))

	c := &Client{
		id:        clientIDCounter.Add(1),
		sessionID: sessionID,
		hub:       hub,
		conn:      conn,
		send:      make(chan ui.Patch, sendBufferSize),
		limiter:   rate.NewLimiter(rate.Limit(hub.cfg.EventsPerSecond), hub.cfg.EventBurst),
		ctx:       ctx,
		cancel:    cancel,
	}
	c.controller = ui.NewController(hub.backend, ui.NewPatchView(c.enqueue), hub.renderer, &hub.cfg, opts...)
	return c
}

// ID returns the client's unique identifier for deterministic ordering
func (c *Client) ID() uint64 {
	return c.id
}

// SessionID returns the identifier attached to this session's logs.
func (c *Client) SessionID() string {
	return c.sessionID
}

// enqueue queues a patch for the browser. Patches are dropped when the
// session is closed or the browser is not keeping up.
func (c *Client) enqueue(p ui.Patch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- p:
	default:
		metrics.WSEventsDropped.WithLabelValues("send_buffer_full").Inc()
		logging.Ctx(c.ctx).Warn().Str("op", p.Op).Str("target", p.Target).Msg("send buffer full, dropping patch")
	}
}

// closeSend closes the send channel once; writePump then closes the socket.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump decodes page events and hands them to the controller.
func (c *Client) readPump() {
	defer func() {
		c.cancel()
		c.hub.unregister(c)
		_ = c.conn.Close() // Explicitly ignore error - best-effort cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Ctx(c.ctx).Error().Err(err).Msg("unexpected websocket close error")
				metrics.WSErrors.WithLabelValues("unexpected_close").Inc()
			}
			break
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			metrics.WSErrors.WithLabelValues("invalid_json").Inc()
			logging.Ctx(c.ctx).Warn().Err(err).Msg("failed to decode page event")
			continue
		}

		if rateLimited(ev.Type) && !c.limiter.Allow() {
			metrics.WSEventsDropped.WithLabelValues("rate_limited").Inc()
			logging.Ctx(c.ctx).Debug().Str("type", ev.Type).Msg("event rate limit exceeded, dropping event")
			continue
		}
		if err := c.dispatch(ev); err != nil {
			metrics.WSErrors.WithLabelValues("invalid_event").Inc()
			logging.Ctx(c.ctx).Warn().Err(err).Str("type", ev.Type).Msg("rejected page event")
		}
	}
}

// rateLimited reports whether an event type spends a limiter token. Search
// keystrokes are coalesced by the debounce and outside clicks never reach
// the backend.
func rateLimited(eventType string) bool {
	switch eventType {
	case EventSearch, EventClickOutside:
		return false
	default:
		return true
	}
}

// writePump writes patches to the websocket connection and keeps it alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Explicitly ignore error - best-effort cleanup
	}()

	for {
		select {
		case patch, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set write deadline")
				return
			}

			if !ok {
				// The hub closed the session
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logging.Ctx(c.ctx).Debug().Err(err).Msg("failed to write close message")
				}
				return
			}

			data, err := json.Marshal(patch)
			if err != nil {
				metrics.WSErrors.WithLabelValues("encode").Inc()
				logging.Ctx(c.ctx).Error().Err(err).Str("op", patch.Op).Msg("failed to encode patch")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to write patch")
				return
			}
			metrics.WSMessagesSent.Inc()

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start registers the session with the hub and begins processing. It
// reports false, leaving the connection untouched, when the hub is not
// running.
func (c *Client) Start() bool {
	if !c.hub.register(c) {
		c.cancel()
		return false
	}

	go func() {
		_ = c.controller.Run(c.ctx)
	}()
	go c.writePump()
	go c.readPump()
	return true
}
