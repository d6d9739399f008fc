// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/tomtom215/movielens-web/internal/logging"
)

//go:embed web/index.html.tmpl web/static
var webFS embed.FS

// Genres offered as filter checkboxes.
var pageGenres = []string{
	"Action", "Adventure", "Animation", "Children", "Comedy", "Crime",
	"Documentary", "Drama", "Fantasy", "Film-Noir", "Horror", "Musical",
	"Mystery", "Romance", "Sci-Fi", "Thriller", "War", "Western",
}

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Genres         []string
	AgePreferences []selectOption
	Popularity     []selectOption
	TopN           []selectOption
	MinRatings     []selectOption
}

func defaultPageData() pageData {
	return pageData{
		Genres: pageGenres,
		AgePreferences: []selectOption{
			{Value: "", Label: "Any era", Selected: true},
			{Value: "classic", Label: "Classic (before 1980)"},
			{Value: "modern", Label: "Modern (1980-2000)"},
			{Value: "recent", Label: "Recent (after 2000)"},
		},
		Popularity: []selectOption{
			{Value: "", Label: "Any", Selected: true},
			{Value: "popular", Label: "Popular favorites"},
			{Value: "hidden_gems", Label: "Hidden gems"},
		},
		TopN: []selectOption{
			{Value: "5", Label: "5"},
			{Value: "10", Label: "10", Selected: true},
			{Value: "20", Label: "20"},
			{Value: "30", Label: "30"},
		},
		MinRatings: []selectOption{
			{Value: "0", Label: "Any rating", Selected: true},
			{Value: "3", Label: "3.0+"},
			{Value: "3.5", Label: "3.5+"},
			{Value: "4", Label: "4.0+"},
		},
	}
}

// pageRenderer renders the index page once and serves the cached bytes;
// nothing on the page varies per request.
type pageRenderer struct {
	index  []byte
	static fs.FS
}

func newPageRenderer() (*pageRenderer, error) {
	tmpl, err := template.ParseFS(webFS, "web/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, defaultPageData()); err != nil {
		return nil, fmt.Errorf("failed to render index template: %w", err)
	}

	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &pageRenderer{index: buf.Bytes(), static: static}, nil
}

// Index serves the single application page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.page.index); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}

// Static serves the embedded script and stylesheet under /static/.
func (h *Handler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(h.page.static)))
}
