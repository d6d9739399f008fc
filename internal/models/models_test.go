// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package models

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestFilterSelectionHasPreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter FilterSelection
		want   bool
	}{
		{"empty", FilterSelection{TopN: 10}, false},
		{"empty genre slice", FilterSelection{Genres: []string{}}, false},
		{"min rating alone", FilterSelection{MinRating: ptr(4.0)}, false},
		{"genre", FilterSelection{Genres: []string{"Comedy"}}, true},
		{"era", FilterSelection{AgePreference: "classic"}, true},
		{"popularity", FilterSelection{Popularity: "popular"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.HasPreference(); got != tt.want {
				t.Errorf("HasPreference() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSelectionWireFormat(t *testing.T) {
	t.Parallel()

	f := FilterSelection{AgePreference: "modern", TopN: 12, MinRating: ptr(0)}.Normalize()
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"genres":[],"agePreference":"modern","popularity":"","topN":12,"minRating":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestMovieSummaryDecode(t *testing.T) {
	t.Parallel()

	body := `[{"movieId":1,"title":"Toy Story (1995)","year":1995,"avgRating":3.92,"predictedRating":4.4,"numRatings":215,"posterUrl":"https://img/1.jpg"},
	          {"title":"Untitled","avgRating":3,"numRatings":2}]`

	var movies []MovieSummary
	if err := json.Unmarshal([]byte(body), &movies); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].Year == nil || *movies[0].Year != 1995 || !movies[0].HasPoster() {
		t.Errorf("first movie decoded wrong: %+v", movies[0])
	}
	if movies[0].PredictedRating == nil || *movies[0].PredictedRating != 4.4 {
		t.Errorf("predicted rating = %v, want 4.4", movies[0].PredictedRating)
	}
	if movies[1].Year != nil || movies[1].PredictedRating != nil || movies[1].HasPoster() {
		t.Errorf("optional fields should be absent: %+v", movies[1])
	}
}

func TestChartSeriesKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	body := `{"ratingDistribution":{"0.5":1101,"1.0":3326,"4.5":8551,"2.0":7551},
	          "topGenres":{"Drama":4361,"Comedy":3756},
	          "ratingCategories":{"Low (< 2.5)":1500,"Medium (2.5-3.5)":5000,"High (> 3.5)":3242}}`

	var charts InsightCharts
	if err := json.Unmarshal([]byte(body), &charts); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got, want := charts.RatingDistribution.Labels(), []string{"0.5", "1.0", "4.5", "2.0"}; !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if got, want := charts.RatingDistribution.Values(), []float64{1101, 3326, 8551, 7551}; !reflect.DeepEqual(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
	if got := charts.RatingCategories.Labels(); got[2] != "High (> 3.5)" {
		t.Errorf("categories = %v", got)
	}
}

func TestChartSeriesErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"array":      `{"topGenres":[1,2]}`,
		"non-number": `{"topGenres":{"Drama":"many"}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var charts InsightCharts
			err := json.Unmarshal([]byte(body), &charts)
			if err == nil || !strings.Contains(err.Error(), "chart series") {
				t.Errorf("Unmarshal() error = %v, want chart series error", err)
			}
		})
	}
}

func TestChartSeriesNumberForms(t *testing.T) {
	t.Parallel()

	var series ChartSeries
	if err := json.Unmarshal([]byte(`{"b": 2.5, "a": -1, "c": 1e3, "d": 0}`), &series); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := ChartSeries{
		{Label: "b", Count: 2.5},
		{Label: "a", Count: -1},
		{Label: "c", Count: 1000},
		{Label: "d", Count: 0},
	}
	if !reflect.DeepEqual(series, want) {
		t.Errorf("series = %v, want %v", series, want)
	}
}

func TestChartSeriesNull(t *testing.T) {
	t.Parallel()

	var charts InsightCharts
	if err := json.Unmarshal([]byte(`{"topGenres":null}`), &charts); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if charts.TopGenres != nil {
		t.Errorf("TopGenres = %v, want nil", charts.TopGenres)
	}
}

func ptr(f float64) *float64 { return &f }
