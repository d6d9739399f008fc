// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

// Page element IDs the controller writes to.
const (
	RegionRecResults     = "recommendations-results"
	RegionRecLoading     = "rec-loading"
	RegionSearchInput    = "movie-search"
	RegionSearchResults  = "search-results"
	RegionSimilarResults = "similar-movie-results"
	RegionSimilarGrid    = "similar-movies-grid"
	RegionSimilarLoading = "similar-loading"
	RegionInsightsButton = "load-insights-btn"
	RegionInsightsLoad   = "insights-loading"
	RegionInsightsStats  = "insights-stats"
	RegionTotalMovies    = "total-movies"
	RegionAvgRating      = "avg-rating"
	RegionTotalRatings   = "total-ratings"
	RegionCharts         = "charts-container"
	RegionGallery        = "insights-images-container"
)

// Chart canvas IDs.
const (
	CanvasRatingChart   = "ratingChart"
	CanvasGenreChart    = "genreChart"
	CanvasCategoryChart = "categoryChart"
)

// User-facing messages.
const (
	MsgSelectPreference  = "Please select at least one preference (genre, era, or movie type)"
	MsgConnectionFailed  = "Failed to connect to server. Make sure Flask backend is running."
	MsgRecommendFailed   = "Failed to get recommendations"
	MsgNoRecommendations = "No movies found matching your preferences. Try adjusting your filters."
	MsgNoSimilar         = "No similar movies found."
	MsgSimilarHeading    = "No Similar Movies Available"
	MsgSimilarHint       = "Try searching for a different movie that has more genre and tag information."
	MsgInsightsFailed    = "Failed to load insights. Make sure Flask backend is running."
	MsgNoInsightImages   = "No insight images found."
	MsgImageFailed       = "Failed to load image"

	LabelLoading     = "Loading..."
	LabelLoadInsight = "Load Analytics Data"
)
