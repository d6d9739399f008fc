// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"context"

	"github.com/tomtom215/movielens-web/internal/backend"
	"github.com/tomtom215/movielens-web/internal/logging"
	"github.com/tomtom215/movielens-web/internal/metrics"
)

// GetSimilarMovies shows the movies most similar to movieID.
func (c *Controller) GetSimilarMovies(movieID int, title string) {
	c.post(func() {
		c.getSimilarMovies(movieID, title)
	})
}

func (c *Controller) getSimilarMovies(movieID int, title string) {
	c.view.Show(RegionSimilarLoading)
	c.view.SetHTML(RegionSimilarResults, "")
	c.view.SetHTML(RegionSimilarGrid, "")

	topK := c.cfg.SimilarTopK
	c.async(func(ctx context.Context) func() {
		movies, err := c.backend.SimilarMovies(ctx, movieID, topK)
		return func() {
			c.view.Hide(RegionSimilarLoading)

			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Int("movie_id", movieID).Msg("Similar movies request failed")
				metrics.RecordFlow(flowSimilar, "error")

				// Sparse genre/tag data is a user-recoverable condition, not a fault.
				if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Err == nil {
					html, rerr := c.renderer.SimilarWarning(apiErr.MessageOr(MsgNoSimilar))
					c.setHTML(RegionSimilarResults, html, rerr)
					return
				}
				c.showError(RegionSimilarResults, MsgConnectionFailed)
				return
			}

			metrics.RecordFlow(flowSimilar, "ok")
			heading, herr := c.renderer.SimilarHeading(title)
			c.setHTML(RegionSimilarResults, heading, herr)

			if len(movies) == 0 {
				html, rerr := c.renderer.NoResults(MsgNoSimilar)
				c.setHTML(RegionSimilarGrid, html, rerr)
				return
			}
			html, rerr := c.renderer.MovieGrid(movies, false)
			c.setHTML(RegionSimilarGrid, html, rerr)
		}
	})
}
