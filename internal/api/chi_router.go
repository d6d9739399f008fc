// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/movielens-web/internal/config"
	"github.com/tomtom215/movielens-web/internal/middleware"
)

// compressLevel is the gzip level for the page and its assets.
const compressLevel = 5

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the security settings for
// CORS and rate limiting.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(NewChiMiddlewareConfig(sec)),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(SecurityHeaders())           // nosniff, frame denial, HSTS over TLS
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	// ========================
	// Page and Assets
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(compressLevel, "text/html", "text/css", "application/javascript", "text/javascript"))

		r.Get("/", router.handler.Index)
		r.Handle("/static/*", router.handler.Static())
	})

	// ========================
	// Page Sessions
	// ========================
	// Upgrades are limited separately; each one is a long-lived session.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitWebSocket())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/ws", router.handler.WebSocket)
	})

	// ========================
	// Probes and Metrics
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.With(router.chiMiddleware.RateLimitHealth()).Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
