// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package services

import (
	"context"
)

// SessionHub matches *websocket.Hub's RunWithContext method.
type SessionHub interface {
	RunWithContext(ctx context.Context) error
}

// SessionHubService runs the page session hub under supervision. The hub
// can be restarted after it returns, so a crash only drops the sessions that
// were open at the time; browsers reconnect on their own.
type SessionHubService struct {
	hub  SessionHub
	name string
}

// NewSessionHubService creates a supervised session hub.
func NewSessionHubService(hub SessionHub) *SessionHubService {
	return &SessionHubService{
		hub:  hub,
		name: "session-hub",
	}
}

// Serve implements suture.Service.
func (s *SessionHubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

func (s *SessionHubService) String() string {
	return s.name
}
