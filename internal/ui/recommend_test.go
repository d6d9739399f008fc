// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/movielens-web/internal/backend"
	"github.com/tomtom215/movielens-web/internal/models"
)

func TestGetRecommendations_RequiresPreference(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend()
	c, view := startController(t, fb, nil)

	c.GetRecommendations(models.FilterSelection{TopN: 10, MinRating: floatPtr(4)})
	settle(t, c)

	if n := fb.count("recommendations"); n != 0 {
		t.Errorf("backend called %d times, want 0", n)
	}
	html, ok := view.lastHTML(RegionRecResults)
	if !ok {
		t.Fatal("no HTML written to recommendations region")
	}
	if !strings.Contains(html, `class="error-message"`) || !strings.Contains(html, MsgSelectPreference) {
		t.Errorf("html = %q, want error box with %q", html, MsgSelectPreference)
	}
	if view.count(OpShow, RegionRecLoading) != 0 {
		t.Error("loading indicator should not be shown for invalid input")
	}
}

func TestGetRecommendations_FieldValidation(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend()
	c, view := startController(t, fb, nil)

	c.GetRecommendations(models.FilterSelection{Genres: []string{"Drama"}, TopN: 500})
	settle(t, c)

	if n := fb.count("recommendations"); n != 0 {
		t.Errorf("backend called %d times, want 0", n)
	}
	html, _ := view.lastHTML(RegionRecResults)
	if !strings.Contains(html, "topN must be at most 100") {
		t.Errorf("html = %q, want validator message", html)
	}
}

func TestGetRecommendations_RendersCards(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend()
	fb.recommend = func(models.FilterSelection) ([]models.MovieSummary, error) {
		return []models.MovieSummary{
			{
				MovieID:         318,
				Title:           "Shawshank Redemption, The",
				Year:            intPtr(1994),
				AvgRating:       4.43,
				PredictedRating: floatPtr(4.8),
				NumRatings:      81482,
				PosterURL:       "https://posters.test/318.jpg",
			},
			{
				MovieID:    1,
				Title:      "Toy Story",
				AvgRating:  3.9,
				NumRatings: 215,
			},
		}, nil
	}
	c, view := startController(t, fb, nil)

	filters := models.FilterSelection{Genres: []string{"Drama"}, AgePreference: "classic", TopN: 10}
	c.GetRecommendations(filters)
	settle(t, c)

	if n := fb.count("recommendations"); n != 1 {
		t.Fatalf("backend called %d times, want 1", n)
	}
	if got := fb.filters[0]; got.AgePreference != "classic" || got.TopN != 10 || len(got.Genres) != 1 {
		t.Errorf("filters sent = %+v", got)
	}

	show := view.lastIndex(OpShow, RegionRecLoading)
	hide := view.lastIndex(OpHide, RegionRecLoading)
	if show < 0 || hide < show {
		t.Errorf("loading indicator show=%d hide=%d, want show before hide", show, hide)
	}

	html, _ := view.lastHTML(RegionRecResults)
	for _, want := range []string{
		`<img src="https://posters.test/318.jpg"`,
		"⭐ 4.43",
		"🎯 4.8",
		"1994",
		"81,482 ratings",
		"N/A",
		"215 ratings",
		`<div class="poster-title">Toy Story</div>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
	if n := strings.Count(html, `class="movie-card"`); n != 2 {
		t.Errorf("rendered %d cards, want 2", n)
	}
}

func TestGetRecommendations_Empty(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend()
	c, view := startController(t, fb, nil)

	c.GetRecommendations(models.FilterSelection{Popularity: "hidden_gems"})
	settle(t, c)

	html, _ := view.lastHTML(RegionRecResults)
	if !strings.Contains(html, `class="no-results"`) || !strings.Contains(html, MsgNoRecommendations) {
		t.Errorf("html = %q, want no-results message", html)
	}
}

func TestGetRecommendations_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message",
			err:  &backend.APIError{Endpoint: backend.EndpointRecommendations, StatusCode: 400, Message: "Unknown genre: Westerns"},
			want: "Unknown genre: Westerns",
		},
		{
			name: "no backend message",
			err:  &backend.APIError{Endpoint: backend.EndpointRecommendations, StatusCode: 500},
			want: MsgRecommendFailed,
		},
		{
			name: "connection failure",
			err:  &backend.ConnectionError{Endpoint: backend.EndpointRecommendations, Err: errors.New("connection refused")},
			want: MsgConnectionFailed,
		},
		{
			name: "undecodable success body",
			err:  &backend.APIError{Endpoint: backend.EndpointRecommendations, StatusCode: 200, Err: errors.New("invalid character")},
			want: MsgConnectionFailed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fb := newFakeBackend()
			fb.recommend = func(models.FilterSelection) ([]models.MovieSummary, error) {
				return nil, tt.err
			}
			c, view := startController(t, fb, nil)

			c.GetRecommendations(models.FilterSelection{Genres: []string{"Western"}})
			settle(t, c)

			html, _ := view.lastHTML(RegionRecResults)
			if !strings.Contains(html, `class="error-message"`) || !strings.Contains(html, tt.want) {
				t.Errorf("html = %q, want error box with %q", html, tt.want)
			}
			if view.count(OpHide, RegionRecLoading) != 1 {
				t.Error("loading indicator should be hidden after failure")
			}
		})
	}
}

func TestRecommendationError(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("context"), &backend.APIError{StatusCode: 422, Message: "topN too large"})
	if got := recommendationError(wrapped); got != "topN too large" {
		t.Errorf("recommendationError(wrapped) = %q", got)
	}
	if got := recommendationError(errors.New("boom")); got != MsgConnectionFailed {
		t.Errorf("recommendationError(plain) = %q", got)
	}
}
