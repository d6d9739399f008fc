// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/movielens-web/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func float(v float64) *float64 { return &v }

func TestValidateStruct_FilterSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     models.FilterSelection
		wantField string
		wantMsg   string
	}{
		{
			name:  "genres only",
			input: models.FilterSelection{Genres: []string{"Comedy"}, TopN: 10},
		},
		{
			name:  "zero topN means backend default",
			input: models.FilterSelection{Popularity: "popular"},
		},
		{
			name:  "min rating at upper bound",
			input: models.FilterSelection{AgePreference: "classic", MinRating: float(5)},
		},
		{
			name:      "topN too large",
			input:     models.FilterSelection{Genres: []string{"Drama"}, TopN: 500},
			wantField: "topN",
			wantMsg:   "topN must be at most 100",
		},
		{
			name:      "negative topN",
			input:     models.FilterSelection{Genres: []string{"Drama"}, TopN: -1},
			wantField: "topN",
			wantMsg:   "topN must be at least 1",
		},
		{
			name:      "min rating above scale",
			input:     models.FilterSelection{Popularity: "hidden", MinRating: float(7.5)},
			wantField: "minRating",
			wantMsg:   "minRating must be at most 5",
		},
		{
			name:      "blank genre",
			input:     models.FilterSelection{Genres: []string{""}},
			wantField: "genres[0]",
			wantMsg:   "genres[0] is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if tt.wantMsg == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", verr.Error(), tt.wantMsg)
			}
		})
	}
}

type eventPayload struct {
	Query   string `json:"query" validate:"max=5"`
	MovieID int    `json:"movieId" validate:"required,gt=0"`
	Mode    string `json:"mode" validate:"omitempty,oneof=a b"`
}

func TestTranslateError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&eventPayload{Query: "abcdefg", Mode: "c"})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	msg := verr.Error()
	for _, want := range []string{
		"query must be at most 5 characters",
		"movieId is required",
		"mode must be one of: a b",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single error", func(t *testing.T) {
		verr := ValidateStruct(&eventPayload{MovieID: -3})
		if verr == nil {
			t.Fatal("expected validation error")
		}
		apiErr := verr.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		if apiErr.Message != "movieId must be greater than 0" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "movieId" {
			t.Errorf("Details[field] = %v, want movieId", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		verr := ValidateStruct(&eventPayload{Query: "toolong"})
		if verr == nil {
			t.Fatal("expected validation error")
		}
		apiErr := verr.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details[fields] = %#v, want two entries", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
