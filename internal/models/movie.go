// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package models

// MovieSummary is a single movie as returned by /recommendations and /similar-movies.
type MovieSummary struct {
	MovieID         int      `json:"movieId,omitempty"`
	Title           string   `json:"title"`
	Year            *int     `json:"year,omitempty"`            // nil when the title has no parsable year
	AvgRating       float64  `json:"avgRating"`                 // mean of all user ratings
	PredictedRating *float64 `json:"predictedRating,omitempty"` // recommendations only
	NumRatings      int      `json:"numRatings"`
	PosterURL       string   `json:"posterUrl,omitempty"`
}

// HasPoster reports whether a poster image should be attempted.
func (m MovieSummary) HasPoster() bool {
	return m.PosterURL != ""
}

// SearchResult is one entry of the /search-movies response.
type SearchResult struct {
	MovieID   int     `json:"movieId"`
	Title     string  `json:"title"`
	AvgRating float64 `json:"avgRating"`
}

// Selection is the movie most recently picked from the search list.
type Selection struct {
	MovieID int    `json:"movieId"`
	Title   string `json:"title"`
}

// SimilarRequest is the /similar-movies request body.
type SimilarRequest struct {
	MovieID int `json:"movieId"`
	TopK    int `json:"topK"`
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Message string `json:"message"`
}

// ErrorBody is the error envelope the backend returns on non-2xx responses.
type ErrorBody struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
