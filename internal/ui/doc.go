// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

// Package ui implements the movie recommender's page logic.
//
// A Controller owns everything a single page session needs: the pending
// search lookup, the selected movie, and the insights dashboard state. It
// never touches the DOM directly. Instead it drives a View, which the
// websocket layer implements with PatchView by turning each call into a
// JSON patch the browser applies.
//
// # Flows
//
//   - Search / SelectMovie / ClickOutside: debounced movie lookup with a
//     dropdown of matches; picking one runs the similarity flow.
//   - GetRecommendations: validates the preference form and renders cards.
//   - GetSimilarMovies: renders similar movies, or a warning panel when the
//     backend cannot compute similarity for the movie.
//   - LoadInsights: fetches stats, chart series and gallery images in
//     parallel exactly once per session.
//
// # Concurrency
//
// Session state is confined to the goroutine running Controller.Run.
// Backend calls run on separate goroutines and hand their rendering step
// back to that loop, so a slow request never blocks other events.
// Recommendation and similarity requests are not cancelled; when two race,
// the last response to arrive wins. Search results are tagged with the
// keystroke that produced them and dropped when a newer keystroke exists.
//
// Fragments are rendered with html/template from embedded templates, so
// backend-provided titles and URLs are escaped.
package ui
