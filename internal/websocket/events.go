// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package websocket

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movielens-web/internal/metrics"
	"github.com/tomtom215/movielens-web/internal/models"
	"github.com/tomtom215/movielens-web/internal/ui"
	"github.com/tomtom215/movielens-web/internal/validation"
)

// Page event types sent by the browser.
const (
	EventSearch       = "search"
	EventSelectMovie  = "selectMovie"
	EventClickOutside = "clickOutside"
	EventRecommend    = "recommend"
	EventSimilar      = "similar"
	EventLoadInsights = "loadInsights"
	EventScrollTo     = "scrollTo"
	EventPing         = "ping"
)

// OpPong answers a ping event.
const OpPong = "pong"

// Event is a message from the page.
type Event struct {
	Type string          `json:"type" validate:"required,oneof=search selectMovie clickOutside recommend similar loadInsights scrollTo ping"`
	Data json.RawMessage `json:"data,omitempty"`
}

// SearchData is the payload of a search event.
type SearchData struct {
	Query string `json:"query" validate:"max=200"`
}

// MovieData is the payload of selectMovie and similar events.
type MovieData struct {
	MovieID int    `json:"movieId" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=300"`
}

// ScrollData is the payload of a scrollTo event.
type ScrollData struct {
	Section string `json:"section" validate:"required,max=64"`
}

// dispatch routes a validated event to the session's controller.
func (c *Client) dispatch(ev Event) error {
	if verr := validation.ValidateStruct(&ev); verr != nil {
		return eventError(verr)
	}
	metrics.WSMessagesReceived.WithLabelValues(ev.Type).Inc()

	switch ev.Type {
	case EventSearch:
		var d SearchData
		if err := decodePayload(ev, &d); err != nil {
			return err
		}
		c.controller.Search(d.Query)

	case EventSelectMovie, EventSimilar:
		var d MovieData
		if err := decodePayload(ev, &d); err != nil {
			return err
		}
		if ev.Type == EventSelectMovie {
			c.controller.SelectMovie(d.MovieID, d.Title)
		} else {
			c.controller.GetSimilarMovies(d.MovieID, d.Title)
		}

	case EventClickOutside:
		c.controller.ClickOutside()

	case EventRecommend:
		// Range checks happen in the controller so failures render inline.
		var filters models.FilterSelection
		if len(ev.Data) > 0 {
			if err := json.Unmarshal(ev.Data, &filters); err != nil {
				return fmt.Errorf("decode %s payload: %w", ev.Type, err)
			}
		}
		c.controller.GetRecommendations(filters)

	case EventLoadInsights:
		c.controller.LoadInsights()

	case EventScrollTo:
		var d ScrollData
		if err := decodePayload(ev, &d); err != nil {
			return err
		}
		c.controller.ScrollToSection(d.Section)

	case EventPing:
		c.enqueue(ui.Patch{Op: OpPong})
	}
	return nil
}

// decodePayload decodes and validates an event's data.
func decodePayload(ev Event, dst interface{}) error {
	if len(ev.Data) == 0 {
		return fmt.Errorf("%s event has no data", ev.Type)
	}
	if err := json.Unmarshal(ev.Data, dst); err != nil {
		return fmt.Errorf("decode %s payload: %w", ev.Type, err)
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		return eventError(verr)
	}
	return nil
}

func eventError(verr *validation.RequestValidationError) error {
	apiErr := verr.ToAPIError()
	return fmt.Errorf("%s: %s", apiErr.Code, apiErr.Message)
}
