// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/movielens-web/internal/models"
)

// ChartConfig is a chart the browser draws with Chart.js. Implementations
// marshal to a complete Chart.js configuration object.
type ChartConfig interface {
	json.Marshaler
	chartType() string
}

const (
	tickColor   = "#b0b0b0"
	gridColor   = "rgba(255, 255, 255, 0.1)"
	borderWidth = 2
)

// Dashboard chart colors.
var (
	ratingBarColors = barColors{Background: "rgba(229, 9, 20, 0.7)", Border: "rgba(229, 9, 20, 1)"}
	genreBarColors  = barColors{Background: "rgba(54, 162, 235, 0.7)", Border: "rgba(54, 162, 235, 1)"}

	categoryPieBackgrounds = []string{
		"rgba(75, 192, 192, 0.7)",
		"rgba(255, 206, 86, 0.7)",
		"rgba(255, 99, 132, 0.7)",
	}
	categoryPieBorders = []string{
		"rgba(75, 192, 192, 1)",
		"rgba(255, 206, 86, 1)",
		"rgba(255, 99, 132, 1)",
	}
)

type barColors struct {
	Background string
	Border     string
}

// BarChart is a single-dataset bar chart.
type BarChart struct {
	Labels      []string
	Values      []float64
	SeriesLabel string
	Background  string
	Border      string
}

// NewBarChart builds a bar chart from an ordered series.
func NewBarChart(series models.ChartSeries, label string, colors barColors) BarChart {
	return BarChart{
		Labels:      series.Labels(),
		Values:      series.Values(),
		SeriesLabel: label,
		Background:  colors.Background,
		Border:      colors.Border,
	}
}

func (BarChart) chartType() string { return "bar" }

// PieChart is a single-dataset pie chart with per-slice colors.
type PieChart struct {
	Labels      []string
	Values      []float64
	Backgrounds []string
	Borders     []string
}

// NewPieChart builds a pie chart from an ordered series.
func NewPieChart(series models.ChartSeries, backgrounds, borders []string) PieChart {
	return PieChart{
		Labels:      series.Labels(),
		Values:      series.Values(),
		Backgrounds: backgrounds,
		Borders:     borders,
	}
}

func (PieChart) chartType() string { return "pie" }

// Chart.js configuration shapes.
type (
	// dataset is the dataset shape of one chart kind.
	dataset interface {
		barDataset | pieDataset
	}

	chartJS[D dataset] struct {
		Type    string       `json:"type"`
		Data    chartData[D] `json:"data"`
		Options chartOptions `json:"options"`
	}

	chartData[D dataset] struct {
		Labels   []string `json:"labels"`
		Datasets []D      `json:"datasets"`
	}

	// barDataset colors every bar the same.
	barDataset struct {
		Label           string    `json:"label"`
		Data            []float64 `json:"data"`
		BackgroundColor string    `json:"backgroundColor"`
		BorderColor     string    `json:"borderColor"`
		BorderWidth     int       `json:"borderWidth"`
	}

	// pieDataset colors each slice separately.
	pieDataset struct {
		Data            []float64 `json:"data"`
		BackgroundColor []string  `json:"backgroundColor"`
		BorderColor     []string  `json:"borderColor"`
		BorderWidth     int       `json:"borderWidth"`
	}

	chartOptions struct {
		Responsive          bool         `json:"responsive"`
		MaintainAspectRatio bool         `json:"maintainAspectRatio"`
		Plugins             chartPlugins `json:"plugins"`
		Scales              *chartScales `json:"scales,omitempty"`
	}

	chartPlugins struct {
		Legend chartLegend `json:"legend"`
	}

	chartLegend struct {
		Display  *bool             `json:"display,omitempty"`
		Position string            `json:"position,omitempty"`
		Labels   *chartLegendLabel `json:"labels,omitempty"`
	}

	chartLegendLabel struct {
		Color   string `json:"color"`
		Padding int    `json:"padding"`
	}

	chartScales struct {
		Y chartAxis `json:"y"`
		X chartAxis `json:"x"`
	}

	chartAxis struct {
		BeginAtZero bool      `json:"beginAtZero,omitempty"`
		Ticks       colorOnly `json:"ticks"`
		Grid        colorOnly `json:"grid"`
	}

	colorOnly struct {
		Color string `json:"color"`
	}
)

// MarshalJSON renders the Chart.js config.
func (c BarChart) MarshalJSON() ([]byte, error) {
	hidden := false
	return json.Marshal(chartJS[barDataset]{
		Type: c.chartType(),
		Data: chartData[barDataset]{
			Labels: nonNilStrings(c.Labels),
			Datasets: []barDataset{{
				Label:           c.SeriesLabel,
				Data:            nonNilFloats(c.Values),
				BackgroundColor: c.Background,
				BorderColor:     c.Border,
				BorderWidth:     borderWidth,
			}},
		},
		Options: chartOptions{
			Responsive:          true,
			MaintainAspectRatio: true,
			Plugins:             chartPlugins{Legend: chartLegend{Display: &hidden}},
			Scales: &chartScales{
				Y: chartAxis{BeginAtZero: true, Ticks: colorOnly{tickColor}, Grid: colorOnly{gridColor}},
				X: chartAxis{Ticks: colorOnly{tickColor}, Grid: colorOnly{gridColor}},
			},
		},
	})
}

// MarshalJSON renders the Chart.js config.
func (c PieChart) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartJS[pieDataset]{
		Type: c.chartType(),
		Data: chartData[pieDataset]{
			Labels: nonNilStrings(c.Labels),
			Datasets: []pieDataset{{
				Data:            nonNilFloats(c.Values),
				BackgroundColor: nonNilStrings(c.Backgrounds),
				BorderColor:     nonNilStrings(c.Borders),
				BorderWidth:     borderWidth,
			}},
		},
		Options: chartOptions{
			Responsive:          true,
			MaintainAspectRatio: true,
			Plugins: chartPlugins{Legend: chartLegend{
				Position: "bottom",
				Labels:   &chartLegendLabel{Color: tickColor, Padding: 20},
			}},
		},
	})
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilFloats(f []float64) []float64 {
	if f == nil {
		return []float64{}
	}
	return f
}

type canvasChart struct {
	canvas string
	chart  ChartConfig
}

// dashboardCharts maps each dashboard canvas to its chart, in draw order.
func dashboardCharts(charts *models.InsightCharts) []canvasChart {
	return []canvasChart{
		{CanvasRatingChart, NewBarChart(charts.RatingDistribution, "Number of Movies", ratingBarColors)},
		{CanvasGenreChart, NewBarChart(charts.TopGenres, "Number of Movies", genreBarColors)},
		{CanvasCategoryChart, NewPieChart(charts.RatingCategories, categoryPieBackgrounds, categoryPieBorders)},
	}
}
