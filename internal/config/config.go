// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Server: HTTP listener and the public host the page is served from
//  2. Backend: Recommendation API origins, timeouts and circuit breaker
//  3. UI: Page session behavior (debounce delay, search threshold, top-K)
//  4. Security: CORS and per-IP rate limiting
//  5. Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	baseURL := backend.ResolveBaseURL(cfg.Server.PublicHost, cfg.Backend.LocalURL, cfg.Backend.DeployedURL)
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Backend  BackendConfig  `koanf:"backend"`
	UI       UIConfig       `koanf:"ui"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`

	// PublicHost is the hostname browsers use to reach the page. It decides
	// which backend origin is used, once, at startup.
	PublicHost string `koanf:"public_host"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// BackendConfig holds the recommendation API client settings
type BackendConfig struct {
	// LocalURL is used when the page is served from localhost.
	LocalURL string `koanf:"local_url"`

	// DeployedURL is used for every other host.
	DeployedURL string `koanf:"deployed_url"`

	// ImageBaseURL is the static origin the insight gallery images are loaded from.
	ImageBaseURL string `koanf:"image_base_url"`

	// Timeout applies to each backend request.
	Timeout time.Duration `koanf:"timeout"`

	// Circuit breaker settings
	BreakerEnabled      bool          `koanf:"breaker_enabled"`
	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"`
	BreakerInterval     time.Duration `koanf:"breaker_interval"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
}

// UIConfig holds page session behavior
type UIConfig struct {
	// DebounceDelay is the quiet period before a search lookup fires.
	DebounceDelay time.Duration `koanf:"debounce_delay"`

	// SearchMinChars is the shortest query that triggers a lookup.
	SearchMinChars int `koanf:"search_min_chars"`

	// SimilarTopK is the number of similar movies requested per selection.
	SimilarTopK int `koanf:"similar_top_k"`

	// EventsPerSecond and EventBurst throttle inbound page events per session.
	EventsPerSecond float64 `koanf:"events_per_second"`
	EventBurst      int     `koanf:"event_burst"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// AllowedWSOrigins restricts websocket upgrades by Origin header.
	// Empty means same-origin only.
	AllowedWSOrigins []string `koanf:"allowed_ws_origins"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
