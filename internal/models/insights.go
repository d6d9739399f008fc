// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// InsightStats is the /insights/stats response.
type InsightStats struct {
	TotalMovies  int     `json:"totalMovies"`
	AvgRating    float64 `json:"avgRating"`
	TotalRatings int     `json:"totalRatings"`
}

// InsightCharts is the /insights/charts response.
type InsightCharts struct {
	RatingDistribution ChartSeries `json:"ratingDistribution"`
	TopGenres          ChartSeries `json:"topGenres"`
	RatingCategories   ChartSeries `json:"ratingCategories"`
}

// InsightImages is the /insights/images response. Images holds bare filenames.
type InsightImages struct {
	Images []string `json:"images"`
}

// ChartPoint is one labelled count.
type ChartPoint struct {
	Label string
	Count float64
}

// ChartSeries is a label -> count mapping that keeps the key order the
// backend wrote, so chart bars appear in the order the API intends.
type ChartSeries []ChartPoint

// Labels returns the labels in order.
func (s ChartSeries) Labels() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Label
	}
	return out
}

// Values returns the counts in order.
func (s ChartSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Count
	}
	return out
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (s *ChartSeries) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("chart series: expected object, got %v", tok)
	}

	series := ChartSeries{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("chart series: expected string key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		var count float64
		switch v := valTok.(type) {
		case json.Number:
			if count, err = v.Float64(); err != nil {
				return fmt.Errorf("chart series: value for %q: %w", key, err)
			}
		case float64:
			count = v
		default:
			return fmt.Errorf("chart series: value for %q is not a number", key)
		}
		series = append(series, ChartPoint{Label: key, Count: count})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = series
	return nil
}
