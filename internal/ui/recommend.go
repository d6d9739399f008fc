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
	"github.com/tomtom215/movielens-web/internal/models"
	"github.com/tomtom215/movielens-web/internal/validation"
)

const (
	flowRecommendations = "recommendations"
	flowSimilar         = "similar"
	flowInsights        = "insights"
)

// GetRecommendations submits the preference form.
func (c *Controller) GetRecommendations(filters models.FilterSelection) {
	c.post(func() {
		c.getRecommendations(filters)
	})
}

func (c *Controller) getRecommendations(filters models.FilterSelection) {
	if !filters.HasPreference() {
		c.showError(RegionRecResults, MsgSelectPreference)
		metrics.RecordFlow(flowRecommendations, "invalid")
		return
	}
	if verr := validation.ValidateStruct(&filters); verr != nil {
		c.showError(RegionRecResults, verr.Error())
		metrics.RecordFlow(flowRecommendations, "invalid")
		return
	}

	c.view.Show(RegionRecLoading)
	c.view.SetHTML(RegionRecResults, "")

	c.async(func(ctx context.Context) func() {
		movies, err := c.backend.Recommendations(ctx, filters)
		return func() {
			c.view.Hide(RegionRecLoading)

			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Msg("Recommendation request failed")
				c.showError(RegionRecResults, recommendationError(err))
				metrics.RecordFlow(flowRecommendations, "error")
				return
			}

			metrics.RecordFlow(flowRecommendations, "ok")
			if len(movies) == 0 {
				html, err := c.renderer.NoResults(MsgNoRecommendations)
				c.setHTML(RegionRecResults, html, err)
				return
			}
			html, err := c.renderer.MovieGrid(movies, true)
			c.setHTML(RegionRecResults, html, err)
		}
	})
}

// recommendationError picks the inline message for a failed request. Only a
// well-formed error response carries a message worth showing; transport and
// decode failures get the generic connection message.
func recommendationError(err error) string {
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Err == nil {
		return apiErr.MessageOr(MsgRecommendFailed)
	}
	return MsgConnectionFailed
}
