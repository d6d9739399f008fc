// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// metadata and is safe for concurrent use. Error messages name fields by
// their json tag, so a recommendation form with topN=500 reports
// "topN must be at most 100".
//
// # Usage
//
//	filters := models.FilterSelection{TopN: 500}
//	if verr := validation.ValidateStruct(&filters); verr != nil {
//	    view.SetHTML("recommendations-results", renderer.ErrorBox(verr.Error()))
//	    return
//	}
//
// Inbound websocket events are validated the same way; ToAPIError converts
// the result into the VALIDATION_ERROR code/message pair used by the
// JSON error envelope.
package validation
