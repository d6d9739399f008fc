// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/models"
	"github.com/tomtom215/movielens-web/internal/ui"
	ws "github.com/tomtom215/movielens-web/internal/websocket"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "error",
		Format: "console",
		Output: io.Discard,
	})
}

// fakeProber answers the readiness probe.
type fakeProber struct {
	err     error
	message string
}

func (f *fakeProber) Health(ctx context.Context) (*models.HealthStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.HealthStatus{Message: f.message}, nil
}

func (f *fakeProber) BaseURL() string      { return "http://backend.test/api" }
func (f *fakeProber) BreakerState() string { return "closed" }

// emptyBackend satisfies ui.Backend for sessions opened by these tests.
type emptyBackend struct{}

func (emptyBackend) Recommendations(context.Context, models.FilterSelection) ([]models.MovieSummary, error) {
	return nil, nil
}

func (emptyBackend) SearchMovies(context.Context, string) ([]models.SearchResult, error) {
	return nil, nil
}

func (emptyBackend) SimilarMovies(context.Context, int, int) ([]models.MovieSummary, error) {
	return nil, nil
}

func (emptyBackend) InsightStats(context.Context) (*models.InsightStats, error) {
	return nil, errors.New("not used")
}

func (emptyBackend) InsightCharts(context.Context) (*models.InsightCharts, error) {
	return nil, errors.New("not used")
}

func (emptyBackend) InsightImages(context.Context) (*models.InsightImages, error) {
	return nil, errors.New("not used")
}

func (emptyBackend) ImageURL(filename string) string { return filename }

func testConfig() *config.Config {
	return &config.Config{
		UI: config.UIConfig{
			DebounceDelay:   10 * time.Millisecond,
			SearchMinChars:  2,
			SimilarTopK:     10,
			EventsPerSecond: 100,
			EventBurst:      100,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
	}
}

// newTestHub creates a hub; when run is true it is started and stopped with
// the test.
func newTestHub(t *testing.T, cfg *config.Config, run bool) *ws.Hub {
	t.Helper()
	renderer, err := ui.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	hub := ws.NewHub(emptyBackend{}, renderer, &cfg.UI)
	if !run {
		return hub
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.RunWithContext(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	deadline := time.Now().Add(2 * time.Second)
	for !hub.Running() {
		if time.Now().After(deadline) {
			t.Fatal("hub did not start")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return hub
}

func newTestHandler(t *testing.T, prober BackendProber, hub *ws.Hub, cfg *config.Config) *Handler {
	t.Helper()
	h, err := NewHandler(prober, hub, cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

// envelope is the decoded JSON response envelope.
type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Error    *APIError       `json:"error"`
	Metadata *APIMeta        `json:"metadata"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	if env.Metadata == nil {
		t.Fatal("response has no metadata")
	}
	return env
}
