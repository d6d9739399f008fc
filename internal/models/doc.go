// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

/*
Package models defines the view models exchanged with the recommendation API.

All types are response-shaped and transient: they live for one render cycle
of a page session. JSON field names match the backend contract exactly
(camelCase), so these structs are both request bodies and decode targets.

# Types

  - FilterSelection: genre, era and popularity preferences for /recommendations
  - MovieSummary: one movie card (recommendations and similar movies)
  - SearchResult: one row of the search dropdown
  - Selection: the movie currently chosen for the similarity flow
  - InsightStats, InsightCharts, InsightImages: dashboard payloads
  - ChartSeries: label/count pairs that keep the backend's key order
*/
package models
