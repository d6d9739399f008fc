// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movielens-web/internal/models"
)

func decodeChart(t *testing.T, c ChartConfig) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return out
}

func TestBarChartJSON(t *testing.T) {
	t.Parallel()

	var series models.ChartSeries
	if err := json.Unmarshal([]byte(`{"5.0": 40, "0.5": 10, "3.0": 25}`), &series); err != nil {
		t.Fatal(err)
	}

	cfg := decodeChart(t, NewBarChart(series, "Number of Movies", ratingBarColors))

	if cfg["type"] != "bar" {
		t.Errorf("type = %v, want bar", cfg["type"])
	}
	data := cfg["data"].(map[string]interface{})
	if got := data["labels"]; !reflect.DeepEqual(got, []interface{}{"5.0", "0.5", "3.0"}) {
		t.Errorf("labels = %v, want backend order", got)
	}

	ds := data["datasets"].([]interface{})[0].(map[string]interface{})
	if !reflect.DeepEqual(ds["data"], []interface{}{40.0, 10.0, 25.0}) {
		t.Errorf("data = %v", ds["data"])
	}
	if ds["label"] != "Number of Movies" || ds["backgroundColor"] != "rgba(229, 9, 20, 0.7)" || ds["borderWidth"] != 2.0 {
		t.Errorf("dataset = %v", ds)
	}
	if border, ok := ds["borderColor"].(string); !ok || border != "rgba(229, 9, 20, 1)" {
		t.Errorf("borderColor = %v, want a single color", ds["borderColor"])
	}

	opts := cfg["options"].(map[string]interface{})
	legend := opts["plugins"].(map[string]interface{})["legend"].(map[string]interface{})
	if legend["display"] != false {
		t.Errorf("legend = %v, want hidden", legend)
	}
	y := opts["scales"].(map[string]interface{})["y"].(map[string]interface{})
	if y["beginAtZero"] != true {
		t.Errorf("y axis = %v", y)
	}
}

func TestPieChartJSON(t *testing.T) {
	t.Parallel()

	series := models.ChartSeries{{Label: "Excellent", Count: 5}, {Label: "Good", Count: 3}}
	cfg := decodeChart(t, NewPieChart(series, categoryPieBackgrounds, categoryPieBorders))

	if cfg["type"] != "pie" {
		t.Errorf("type = %v, want pie", cfg["type"])
	}
	ds := cfg["data"].(map[string]interface{})["datasets"].([]interface{})[0].(map[string]interface{})
	if bg := ds["backgroundColor"].([]interface{}); len(bg) != 3 || bg[0] != "rgba(75, 192, 192, 0.7)" {
		t.Errorf("backgroundColor = %v", bg)
	}
	if border, ok := ds["borderColor"].([]interface{}); !ok || len(border) != 3 || border[2] != "rgba(255, 99, 132, 1)" {
		t.Errorf("borderColor = %v, want one color per slice", ds["borderColor"])
	}
	if _, ok := ds["label"]; ok {
		t.Error("pie dataset should not carry a label")
	}

	opts := cfg["options"].(map[string]interface{})
	if _, ok := opts["scales"]; ok {
		t.Error("pie chart should not have scales")
	}
	legend := opts["plugins"].(map[string]interface{})["legend"].(map[string]interface{})
	if legend["position"] != "bottom" {
		t.Errorf("legend = %v", legend)
	}
}

func TestEmptySeriesMarshalsArrays(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewBarChart(nil, "Number of Movies", genreBarColors))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("empty chart contains null: %s", data)
	}
}

func TestDashboardChartsCanvases(t *testing.T) {
	t.Parallel()

	got := dashboardCharts(&models.InsightCharts{})
	want := []string{CanvasRatingChart, CanvasGenreChart, CanvasCategoryChart}
	if len(got) != len(want) {
		t.Fatalf("got %d charts, want %d", len(got), len(want))
	}
	for i, cc := range got {
		if cc.canvas != want[i] {
			t.Errorf("chart %d canvas = %q, want %q", i, cc.canvas, want[i])
		}
	}
	if got[2].chart.chartType() != "pie" {
		t.Error("category chart should be a pie chart")
	}
}

func TestPatchJSON(t *testing.T) {
	t.Parallel()

	var got []Patch
	view := NewPatchView(func(p Patch) { got = append(got, p) })
	view.SetControl(RegionInsightsButton, false, LabelLoadInsight)
	view.CreateChart(CanvasGenreChart, NewBarChart(models.ChartSeries{{Label: "Drama", Count: 1}}, "Number of Movies", genreBarColors))
	view.Hide(RegionSearchResults)

	data, err := json.Marshal(got[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"op":"control","target":"load-insights-btn","disabled":false,"label":"Load Analytics Data"}` {
		t.Errorf("control patch = %s", data)
	}

	data, err = json.Marshal(got[1])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `{"op":"chart","target":"genreChart","chart":{"type":"bar"`) {
		t.Errorf("chart patch = %s", data)
	}

	data, err = json.Marshal(got[2])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"op":"hide","target":"search-results"}` {
		t.Errorf("hide patch = %s", data)
	}
}
