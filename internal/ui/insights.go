// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/metrics"
	"github.com/tomtom215/movielens-web/internal/models"
)

// insightsData is one complete dashboard load.
type insightsData struct {
	stats  *models.InsightStats
	charts *models.InsightCharts
	images *models.InsightImages
}

// LoadInsights loads the analytics dashboard once per session. Later calls
// only scroll the dashboard into view.
func (c *Controller) LoadInsights() {
	c.post(c.loadInsights)
}

func (c *Controller) loadInsights() {
	if c.dashboard.loaded {
		c.view.ScrollTo(RegionCharts)
		metrics.DashboardLoads.WithLabelValues("cached").Inc()
		return
	}
	// The button is disabled while loading.
	if c.dashboard.loading {
		return
	}
	c.dashboard.loading = true

	c.view.SetControl(RegionInsightsButton, true, LabelLoading)
	c.view.Show(RegionInsightsLoad)

	c.async(func(ctx context.Context) func() {
		data, err := c.fetchInsights(ctx)
		return func() {
			c.dashboard.loading = false
			c.view.Hide(RegionInsightsLoad)

			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Msg("Failed to load insights")
				c.view.SetControl(RegionInsightsButton, false, LabelLoadInsight)
				c.view.Alert(MsgInsightsFailed)
				metrics.DashboardLoads.WithLabelValues("failed").Inc()
				metrics.RecordFlow(flowInsights, "error")
				return
			}

			c.renderDashboard(data)
		}
	})
}

// fetchInsights issues the three dashboard requests in parallel. Any failure
// fails the whole load.
func (c *Controller) fetchInsights(ctx context.Context) (*insightsData, error) {
	var data insightsData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := c.backend.InsightStats(gctx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		data.stats = stats
		return nil
	})
	g.Go(func() error {
		charts, err := c.backend.InsightCharts(gctx)
		if err != nil {
			return fmt.Errorf("charts: %w", err)
		}
		data.charts = charts
		return nil
	})
	g.Go(func() error {
		images, err := c.backend.InsightImages(gctx)
		if err != nil {
			return fmt.Errorf("images: %w", err)
		}
		data.images = images
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if data.stats == nil || data.charts == nil || data.images == nil {
		return nil, errors.New("incomplete insights response")
	}
	return &data, nil
}

func (c *Controller) renderDashboard(data *insightsData) {
	c.view.SetText(RegionTotalMovies, FormatNumber(data.stats.TotalMovies))
	c.view.SetText(RegionAvgRating, FormatRating(data.stats.AvgRating))
	c.view.SetText(RegionTotalRatings, FormatNumber(data.stats.TotalRatings))
	c.view.SetDisplay(RegionInsightsStats, "grid")

	c.view.SetDisplay(RegionCharts, "grid")
	for _, cc := range dashboardCharts(data.charts) {
		if _, ok := c.dashboard.charts[cc.canvas]; ok {
			c.view.DestroyChart(cc.canvas)
		}
		c.view.CreateChart(cc.canvas, cc.chart)
		c.dashboard.charts[cc.canvas] = cc.chart
	}

	images := make([]GalleryImage, 0, len(data.images.Images))
	for _, filename := range data.images.Images {
		images = append(images, GalleryImage{
			Title: ImageTitle(filename),
			URL:   c.backend.ImageURL(filename),
		})
	}
	html, err := c.renderer.Gallery(images)
	c.setHTML(RegionGallery, html, err)
	c.view.SetDisplay(RegionGallery, "grid")

	c.dashboard.loaded = true
	c.view.SetDisplay(RegionInsightsButton, "none")

	metrics.DashboardLoads.WithLabelValues("loaded").Inc()
	metrics.RecordFlow(flowInsights, "ok")
}
