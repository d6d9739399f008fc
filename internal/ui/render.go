// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/movielens-web/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var leadingNumber = regexp.MustCompile(`^\d+_`)

// Renderer turns backend data into HTML fragments for page regions.
// It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded fragment templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("fragments").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatNumber": FormatNumber,
		"rating":       FormatRating,
		"yearOrNA": func(year *int) string {
			if year == nil || *year == 0 {
				return "N/A"
			}
			return strconv.Itoa(*year)
		},
		"predicted": func(r *float64) string {
			if r == nil {
				return ""
			}
			return FormatRating(*r)
		},
	}
}

type movieGrid struct {
	Movies        []models.MovieSummary
	ShowPredicted bool
}

// MovieGrid renders movie cards. The predicted-rating badge is only shown
// for recommendation results.
func (r *Renderer) MovieGrid(movies []models.MovieSummary, showPredicted bool) (template.HTML, error) {
	return r.execute("movie_grid", movieGrid{Movies: movies, ShowPredicted: showPredicted})
}

// SearchResults renders the clickable search dropdown.
func (r *Renderer) SearchResults(results []models.SearchResult) (template.HTML, error) {
	return r.execute("search_results", results)
}

// ErrorBox renders the inline error message box.
func (r *Renderer) ErrorBox(message string) (template.HTML, error) {
	return r.execute("error_box", message)
}

// NoResults renders an empty-result notice.
func (r *Renderer) NoResults(message string) (template.HTML, error) {
	return r.execute("no_results", message)
}

// SimilarHeading renders the heading above similar movie cards.
func (r *Renderer) SimilarHeading(sourceTitle string) (template.HTML, error) {
	return r.execute("similar_heading", sourceTitle)
}

type similarWarning struct {
	Heading string
	Message string
	Hint    string
}

// SimilarWarning renders the panel shown when the backend cannot compute
// similarity for a movie, quoting the backend's message.
func (r *Renderer) SimilarWarning(message string) (template.HTML, error) {
	return r.execute("similar_warning", similarWarning{
		Heading: MsgSimilarHeading,
		Message: message,
		Hint:    MsgSimilarHint,
	})
}

// GalleryImage is one tile of the insights gallery.
type GalleryImage struct {
	Title string
	URL   string
}

type gallery struct {
	Images []GalleryImage
	Empty  string
}

// Gallery renders the insight image tiles.
func (r *Renderer) Gallery(images []GalleryImage) (template.HTML, error) {
	return r.execute("gallery", gallery{Images: images, Empty: MsgNoInsightImages})
}

func (r *Renderer) execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	//nolint:gosec // output of html/template is already escaped
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// FormatNumber formats an integer with thousands separators (9742 -> "9,742").
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatRating formats a rating with the shortest exact representation
// (3.5 -> "3.5", 4 -> "4").
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ImageTitle derives a display title from an insight image filename:
// "03_genre_popularity.png" -> "Genre Popularity".
func ImageTitle(filename string) string {
	title := leadingNumber.ReplaceAllString(filename, "")
	title = strings.Replace(title, ".png", "", 1)
	title = strings.ReplaceAll(title, "_", " ")

	words := strings.Split(title, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
