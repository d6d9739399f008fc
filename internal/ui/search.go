// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"context"
	"unicode/utf8"

	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/metrics"
	"github.com/tomtom215/movielens-web/internal/models"
)

// Search handles a keystroke in the movie search box. Lookups are debounced;
// only the lookup for the latest keystroke ever renders.
func (c *Controller) Search(query string) {
	c.post(func() {
		c.handleSearch(query)
	})
}

// SelectMovie handles a click on a search result.
func (c *Controller) SelectMovie(movieID int, title string) {
	c.post(func() {
		c.selection = &models.Selection{MovieID: movieID, Title: title}
		c.view.SetValue(RegionSearchInput, title)
		c.view.Hide(RegionSearchResults)
		c.getSimilarMovies(movieID, title)
	})
}

// ClickOutside hides the search dropdown. A pending lookup still fires.
func (c *Controller) ClickOutside() {
	c.post(func() {
		c.view.Hide(RegionSearchResults)
	})
}

func (c *Controller) handleSearch(query string) {
	if c.search.Cancel() {
		metrics.SearchLookups.WithLabelValues("superseded").Inc()
	}

	// Any result still in flight belongs to an older keystroke.
	c.searchGen++

	if utf8.RuneCountInString(query) < c.cfg.SearchMinChars {
		c.view.Hide(RegionSearchResults)
		metrics.SearchLookups.WithLabelValues("too_short").Inc()
		return
	}

	gen := c.searchGen
	c.search.Schedule(func() {
		c.post(func() {
			c.lookup(gen, query)
		})
	})
}

func (c *Controller) lookup(gen uint64, query string) {
	if gen != c.searchGen {
		metrics.SearchLookups.WithLabelValues("stale").Inc()
		return
	}
	metrics.SearchLookups.WithLabelValues("fired").Inc()

	c.async(func(ctx context.Context) func() {
		results, err := c.backend.SearchMovies(ctx, query)
		return func() {
			if gen != c.searchGen {
				metrics.SearchLookups.WithLabelValues("stale").Inc()
				return
			}
			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Str("query", query).Msg("Search error")
				return
			}
			c.showSearchResults(results)
		}
	})
}

func (c *Controller) showSearchResults(results []models.SearchResult) {
	if len(results) == 0 {
		c.view.Hide(RegionSearchResults)
		return
	}

	html, err := c.renderer.SearchResults(results)
	if err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("Failed to render search results")
		return
	}
	c.view.SetHTML(RegionSearchResults, html)
	c.view.Show(RegionSearchResults)
}
