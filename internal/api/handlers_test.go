// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

func TestCheckWebSocketOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		allowed []string
		host    string
		origin  string
		want    bool
	}{
		{"missing origin", nil, "movies.example.com", "", false},
		{"same origin", nil, "movies.example.com", "https://movies.example.com", true},
		{"same origin with port", nil, "localhost:3857", "http://localhost:3857", true},
		{"same origin case insensitive", nil, "Movies.Example.com", "https://movies.example.com", true},
		{"foreign origin rejected by default", nil, "movies.example.com", "https://evil.example.com", false},
		{"listed origin", []string{"https://app.example.com"}, "movies.example.com", "https://app.example.com", true},
		{"wildcard", []string{"*"}, "movies.example.com", "https://anything.example.com", true},
		{"unlisted origin", []string{"https://app.example.com"}, "movies.example.com", "https://other.example.com", false},
		{"origin with control characters", nil, "movies.example.com", "https://evil\n.example.com", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.Security.AllowedWSOrigins = tt.allowed
			h := newTestHandler(t, nil, nil, cfg)

			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			if got := h.checkWebSocketOrigin(req); got != tt.want {
				t.Errorf("checkWebSocketOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWebSocket_HubNotRunning(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	h := newTestHandler(t, nil, newTestHub(t, cfg, false), cfg)

	rec := httptest.NewRecorder()
	h.WebSocket(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v, want %s", env.Error, ErrCodeServiceUnavailable)
	}
}

func TestWebSocket_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	hub := newTestHub(t, cfg, true)
	h := newTestHandler(t, nil, hub, cfg)
	server := httptest.NewServer(NewRouter(h, &cfg.Security).SetupChi())
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {server.URL}})
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var patch struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(data, &patch); err != nil {
		t.Fatalf("decode patch %q: %v", data, err)
	}
	if patch.Op != "pong" {
		t.Errorf("op = %q, want pong", patch.Op)
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("active sessions = %d, want 1", hub.GetClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebSocket_ForeignOriginRejected(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	hub := newTestHub(t, cfg, true)
	h := newTestHandler(t, nil, hub, cfg)
	server := httptest.NewServer(NewRouter(h, &cfg.Security).SetupChi())
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {"https://evil.example.com"}})
	if err == nil {
		_ = conn.Close()
		t.Fatal("Dial() should fail for a foreign origin")
	}
	if resp == nil {
		t.Fatalf("no handshake response: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
	if hub.GetClientCount() != 0 {
		t.Errorf("active sessions = %d, want 0", hub.GetClientCount())
	}
}
