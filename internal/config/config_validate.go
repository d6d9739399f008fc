// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateBackend(); err != nil {
		return err
	}

	if err := c.validateUI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.PublicHost == "" {
		return fmt.Errorf("PUBLIC_HOST is required")
	}
	return nil
}

// validateBackend validates the backend origins and breaker settings
func (c *Config) validateBackend() error {
	if err := validateHTTPURL(c.Backend.LocalURL, "BACKEND_LOCAL_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Backend.DeployedURL, "BACKEND_DEPLOYED_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Backend.ImageBaseURL, "BACKEND_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	return c.validateBreaker()
}

// validateBreaker validates circuit breaker settings (only if enabled)
func (c *Config) validateBreaker() error {
	if !c.Backend.BreakerEnabled {
		return nil
	}
	if c.Backend.BreakerFailureRatio <= 0 || c.Backend.BreakerFailureRatio > 1 {
		return fmt.Errorf("BACKEND_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if c.Backend.BreakerTimeout <= 0 {
		return fmt.Errorf("BACKEND_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateUI validates page session settings
func (c *Config) validateUI() error {
	if c.UI.DebounceDelay < 0 || c.UI.DebounceDelay > 10*time.Second {
		return fmt.Errorf("SEARCH_DEBOUNCE must be between 0 and 10s")
	}
	if c.UI.SearchMinChars < 1 {
		return fmt.Errorf("SEARCH_MIN_CHARS must be at least 1")
	}
	if c.UI.SimilarTopK < 1 || c.UI.SimilarTopK > 100 {
		return fmt.Errorf("SIMILAR_TOP_K must be between 1 and 100")
	}
	if c.UI.EventsPerSecond <= 0 || c.UI.EventBurst < 1 {
		return fmt.Errorf("WS_EVENTS_PER_SECOND must be positive and WS_EVENT_BURST at least 1")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates rate limiting bounds
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
