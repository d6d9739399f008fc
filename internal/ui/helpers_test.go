// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/debounce"
	"github.com/tomtom215/movielens-web/internal/models"
)

// recordingView records every patch a controller produces.
type recordingView struct {
	*PatchView

	mu      sync.Mutex
	patches []Patch
}

func newRecordingView() *recordingView {
	v := &recordingView{}
	v.PatchView = NewPatchView(func(p Patch) {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.patches = append(v.patches, p)
	})
	return v
}

func (v *recordingView) all() []Patch {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Patch(nil), v.patches...)
}

// lastHTML returns the most recent HTML written to target.
func (v *recordingView) lastHTML(target string) (string, bool) {
	patches := v.all()
	for i := len(patches) - 1; i >= 0; i-- {
		if patches[i].Op == OpHTML && patches[i].Target == target {
			return patches[i].HTML, true
		}
	}
	return "", false
}

func (v *recordingView) lastText(target string) string {
	patches := v.all()
	for i := len(patches) - 1; i >= 0; i-- {
		if patches[i].Op == OpText && patches[i].Target == target {
			return patches[i].Text
		}
	}
	return ""
}

func (v *recordingView) count(op, target string) int {
	n := 0
	for _, p := range v.all() {
		if p.Op == op && p.Target == target {
			n++
		}
	}
	return n
}

// lastIndex returns the position of the last matching patch, or -1.
func (v *recordingView) lastIndex(op, target string) int {
	patches := v.all()
	for i := len(patches) - 1; i >= 0; i-- {
		if patches[i].Op == op && patches[i].Target == target {
			return i
		}
	}
	return -1
}

func (v *recordingView) find(op, target string) []Patch {
	var out []Patch
	for _, p := range v.all() {
		if p.Op == op && p.Target == target {
			out = append(out, p)
		}
	}
	return out
}

// fakeBackend answers with canned data and counts calls per endpoint.
type fakeBackend struct {
	mu          sync.Mutex
	calls       map[string]int
	queries     []string
	filters     []models.FilterSelection
	similarArgs [][2]int

	recommend func(models.FilterSelection) ([]models.MovieSummary, error)
	search    func(ctx context.Context, query string) ([]models.SearchResult, error)
	similar   func(movieID, topK int) ([]models.MovieSummary, error)
	stats     func(ctx context.Context) (*models.InsightStats, error)
	charts    func() (*models.InsightCharts, error)
	images    func() (*models.InsightImages, error)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: make(map[string]int)}
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) Recommendations(_ context.Context, filters models.FilterSelection) ([]models.MovieSummary, error) {
	f.record("recommendations")
	f.mu.Lock()
	f.filters = append(f.filters, filters)
	f.mu.Unlock()
	if f.recommend == nil {
		return []models.MovieSummary{}, nil
	}
	return f.recommend(filters)
}

func (f *fakeBackend) SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error) {
	f.record("search")
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.search == nil {
		return []models.SearchResult{}, nil
	}
	return f.search(ctx, query)
}

func (f *fakeBackend) SimilarMovies(_ context.Context, movieID, topK int) ([]models.MovieSummary, error) {
	f.record("similar")
	f.mu.Lock()
	f.similarArgs = append(f.similarArgs, [2]int{movieID, topK})
	f.mu.Unlock()
	if f.similar == nil {
		return []models.MovieSummary{}, nil
	}
	return f.similar(movieID, topK)
}

func (f *fakeBackend) InsightStats(ctx context.Context) (*models.InsightStats, error) {
	f.record("stats")
	if f.stats == nil {
		return &models.InsightStats{TotalMovies: 9742, AvgRating: 3.5, TotalRatings: 100004}, nil
	}
	return f.stats(ctx)
}

func (f *fakeBackend) InsightCharts(_ context.Context) (*models.InsightCharts, error) {
	f.record("charts")
	if f.charts == nil {
		return &models.InsightCharts{
			RatingDistribution: models.ChartSeries{{Label: "0.5", Count: 10}, {Label: "5.0", Count: 40}},
			TopGenres:          models.ChartSeries{{Label: "Drama", Count: 4361}, {Label: "Comedy", Count: 3756}},
			RatingCategories:   models.ChartSeries{{Label: "High", Count: 1}, {Label: "Medium", Count: 2}, {Label: "Low", Count: 3}},
		}, nil
	}
	return f.charts()
}

func (f *fakeBackend) InsightImages(_ context.Context) (*models.InsightImages, error) {
	f.record("images")
	if f.images == nil {
		return &models.InsightImages{Images: []string{"03_genre_popularity.png"}}, nil
	}
	return f.images()
}

func (f *fakeBackend) ImageURL(filename string) string {
	return "http://images.test/insights/" + filename
}

// manualClock hands scheduled debounce callbacks to the test.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	wasActive := !m.stopped
	m.stopped = true
	return wasActive
}

func (m *manualTimer) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func (c *manualClock) AfterFunc(_ time.Duration, f func()) debounce.Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	mt := &manualTimer{fn: f}
	c.timers = append(c.timers, mt)
	return mt
}

// fireActive runs every timer that has not been stopped.
func (c *manualClock) fireActive() {
	c.mu.Lock()
	timers := append([]*manualTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, mt := range timers {
		if !mt.isStopped() {
			mt.fn()
		}
	}
}

func (c *manualClock) scheduled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func testUIConfig() *config.UIConfig {
	return &config.UIConfig{
		DebounceDelay:   300 * time.Millisecond,
		SearchMinChars:  2,
		SimilarTopK:     10,
		EventsPerSecond: 20,
		EventBurst:      40,
	}
}

// startController runs a controller until the test ends.
func startController(t *testing.T, b Backend, clock *manualClock) (*Controller, *recordingView) {
	t.Helper()

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	view := newRecordingView()
	var opts []Option
	if clock != nil {
		opts = append(opts, WithAfterFunc(clock.AfterFunc))
	}
	c := NewController(b, view, renderer, testUIConfig(), opts...)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = c.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-c.Done()
	})
	return c, view
}

// barrier waits until every event queued so far has been processed.
func barrier(t *testing.T, c *Controller) {
	t.Helper()
	done := make(chan struct{})
	if !c.post(func() { close(done) }) {
		t.Fatal("controller stopped")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("controller loop did not respond")
	}
}

// settle waits until no backend call is in flight and every continuation
// has been applied.
func settle(t *testing.T, c *Controller) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		barrier(t, c)
		if c.pending.Load() == 0 {
			barrier(t, c)
			if c.pending.Load() == 0 {
				return
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("controller did not settle")
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
