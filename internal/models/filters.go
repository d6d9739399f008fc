// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package models

// FilterSelection is the /recommendations request body.
//
// At least one of Genres, AgePreference or Popularity must be set before a
// request is issued; HasPreference reports that.
type FilterSelection struct {
	Genres        []string `json:"genres" validate:"omitempty,max=20,dive,required,max=40"`
	AgePreference string   `json:"agePreference" validate:"omitempty,max=40"`
	Popularity    string   `json:"popularity" validate:"omitempty,max=40"`
	TopN          int      `json:"topN" validate:"omitempty,min=1,max=100"`
	MinRating     *float64 `json:"minRating" validate:"omitempty,min=0,max=5"` // serialized as null when unset
}

// HasPreference reports whether any genre, era or popularity preference is set.
func (f FilterSelection) HasPreference() bool {
	return len(f.Genres) > 0 || f.AgePreference != "" || f.Popularity != ""
}

// Normalize returns a copy ready to send: a zero minimum rating becomes null
// and a nil genre list becomes an empty array.
func (f FilterSelection) Normalize() FilterSelection {
	if f.Genres == nil {
		f.Genres = []string{}
	}
	if f.MinRating != nil && *f.MinRating == 0 {
		f.MinRating = nil
	}
	return f
}
