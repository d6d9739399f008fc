// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/metrics"
	"github.com/tomtom215/movielens-web/internal/models"
)

// Backend endpoints (relative to the base URL).
const (
	EndpointHealth          = "/health"
	EndpointRecommendations = "/recommendations"
	EndpointSearchMovies    = "/search-movies"
	EndpointSimilarMovies   = "/similar-movies"
	EndpointInsightStats    = "/insights/stats"
	EndpointInsightCharts   = "/insights/charts"
	EndpointInsightImages   = "/insights/images"
)

// maxErrorBodySize bounds how much of an error response is read.
const maxErrorBodySize = 64 * 1024

// ResolveBaseURL picks the API origin for the host the page is served from.
// Only the exact hostname "localhost" (any port) selects the local origin.
func ResolveBaseURL(pageHost, localURL, deployedURL string) string {
	host := pageHost
	if h, _, err := net.SplitHostPort(pageHost); err == nil {
		host = h
	}
	if host == "localhost" {
		return localURL
	}
	return deployedURL
}

// Client calls the recommendation API. It is safe for concurrent use.
type Client struct {
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	breaker      *circuitBreaker
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client bound to baseURL, which must already be resolved
// with ResolveBaseURL.
func NewClient(cfg *config.BackendConfig, baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: cfg.ImageBaseURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BreakerEnabled {
		c.breaker = newCircuitBreaker("recommendation-api", cfg)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API origin chosen at startup.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ImageURL returns the static URL of an insight image.
func (c *Client) ImageURL(filename string) string {
	base := c.imageBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(filename)
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	if err := c.do(ctx, http.MethodGet, EndpointHealth, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendations calls POST /recommendations with the filter selection.
func (c *Client) Recommendations(ctx context.Context, filters models.FilterSelection) ([]models.MovieSummary, error) {
	var out []models.MovieSummary
	if err := c.do(ctx, http.MethodPost, EndpointRecommendations, nil, filters.Normalize(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchMovies calls GET /search-movies?query=...
func (c *Client) SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error) {
	var out []models.SearchResult
	params := url.Values{"query": []string{query}}
	if err := c.do(ctx, http.MethodGet, EndpointSearchMovies, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SimilarMovies calls POST /similar-movies for the given movie.
func (c *Client) SimilarMovies(ctx context.Context, movieID, topK int) ([]models.MovieSummary, error) {
	var out []models.MovieSummary
	req := models.SimilarRequest{MovieID: movieID, TopK: topK}
	if err := c.do(ctx, http.MethodPost, EndpointSimilarMovies, nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsightStats calls GET /insights/stats.
func (c *Client) InsightStats(ctx context.Context) (*models.InsightStats, error) {
	var out models.InsightStats
	if err := c.do(ctx, http.MethodGet, EndpointInsightStats, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InsightCharts calls GET /insights/charts.
func (c *Client) InsightCharts(ctx context.Context) (*models.InsightCharts, error) {
	var out models.InsightCharts
	if err := c.do(ctx, http.MethodGet, EndpointInsightCharts, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InsightImages calls GET /insights/images.
func (c *Client) InsightImages(ctx context.Context) (*models.InsightImages, error) {
	var out models.InsightImages
	if err := c.do(ctx, http.MethodGet, EndpointInsightImages, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one call: breaker check, request, classification, metrics.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body, out interface{}) error {
	start := time.Now()

	call := func() error {
		return c.roundTrip(ctx, method, endpoint, params, body, out)
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.execute(endpoint, call)
	} else {
		err = call()
	}

	metrics.RecordBackendCall(endpoint, outcome(err), time.Since(start))
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("endpoint", endpoint).Msg("Backend call failed")
	}
	return err
}

// roundTrip sends the request and decodes the response into out.
func (c *Client) roundTrip(ctx context.Context, method, endpoint string, params url.Values, body, out interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(readBodyForError(resp.Body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// readBodyForError reads up to maxErrorBodySize bytes of an error response.
func readBodyForError(body io.Reader) []byte {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil {
		return nil
	}
	return data
}

// errorMessage extracts the backend's explanation from an error body.
func errorMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var eb models.ErrorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		return ""
	}
	if eb.Error != "" {
		return eb.Error
	}
	return eb.Message
}

// BreakerState reports the circuit breaker state, or "disabled".
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.State()
}
