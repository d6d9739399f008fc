// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"context"
	"html/template"
	"sync/atomic"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/debounce"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/models"
)

// eventQueueSize bounds events waiting for the controller loop.
const eventQueueSize = 64

// Backend is the subset of the API client the controller needs.
type Backend interface {
	Recommendations(ctx context.Context, filters models.FilterSelection) ([]models.MovieSummary, error)
	SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error)
	SimilarMovies(ctx context.Context, movieID, topK int) ([]models.MovieSummary, error)
	InsightStats(ctx context.Context) (*models.InsightStats, error)
	InsightCharts(ctx context.Context) (*models.InsightCharts, error)
	InsightImages(ctx context.Context) (*models.InsightImages, error)
	ImageURL(filename string) string
}

// Controller owns the state of one page session and drives its View.
//
// All state is confined to the goroutine running Run. Public methods enqueue
// work onto that loop and return immediately; backend calls run on their own
// goroutines and post their rendering step back to the loop when they finish.
type Controller struct {
	backend  Backend
	view     View
	renderer *Renderer
	cfg      config.UIConfig
	search   *debounce.Timer

	events  chan func()
	done    chan struct{}
	pending atomic.Int64

	// Loop-owned.
	ctx       context.Context
	selection *models.Selection
	searchGen uint64
	dashboard dashboardState
}

type dashboardState struct {
	loaded  bool
	loading bool
	charts  map[string]ChartConfig
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	afterFunc debounce.AfterFunc
}

// WithAfterFunc replaces the clock behind the search debounce.
func WithAfterFunc(af debounce.AfterFunc) Option {
	return func(o *controllerOptions) {
		o.afterFunc = af
	}
}

// NewController creates a controller for one page session. Call Run to start it.
func NewController(b Backend, v View, r *Renderer, cfg *config.UIConfig, opts ...Option) *Controller {
	var o controllerOptions
	for _, opt := range opts {
		opt(&o)
	}

	var debounceOpts []debounce.Option
	if o.afterFunc != nil {
		debounceOpts = append(debounceOpts, debounce.WithAfterFunc(o.afterFunc))
	}

	return &Controller{
		backend:  b,
		view:     v,
		renderer: r,
		cfg:      *cfg,
		search:   debounce.New(cfg.DebounceDelay, debounceOpts...),
		events:   make(chan func(), eventQueueSize),
		done:     make(chan struct{}),
		ctx:      context.Background(),
		dashboard: dashboardState{
			charts: make(map[string]ChartConfig),
		},
	}
}

// Run processes events until ctx is cancelled. Backend calls started by the
// controller use ctx, so closing the session aborts them.
func (c *Controller) Run(ctx context.Context) error {
	c.ctx = ctx
	defer close(c.done)
	defer c.search.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-c.events:
			fn()
		}
	}
}

// Done is closed when Run returns.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// post enqueues fn on the loop. It reports false once the controller stopped.
func (c *Controller) post(fn func()) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.events <- fn:
		return true
	case <-c.done:
		return false
	}
}

// async runs call off the loop and posts the step it returns back onto it.
// Must be called from the loop.
func (c *Controller) async(call func(ctx context.Context) func()) {
	ctx := c.ctx
	c.pending.Add(1)
	go func() {
		defer c.pending.Add(-1)
		if next := call(ctx); next != nil {
			c.post(next)
		}
	}()
}

// setHTML renders a fragment into a region, logging render failures.
func (c *Controller) setHTML(region string, html template.HTML, err error) {
	if err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Str("region", region).Msg("Failed to render fragment")
		return
	}
	c.view.SetHTML(region, html)
}

func (c *Controller) showError(region, message string) {
	html, err := c.renderer.ErrorBox(message)
	c.setHTML(region, html, err)
}

// ScrollToSection scrolls a page section into view.
func (c *Controller) ScrollToSection(id string) {
	c.post(func() {
		c.view.ScrollTo(id)
	})
}
