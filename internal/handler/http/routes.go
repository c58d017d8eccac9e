// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	if h.rateLimit > 0 {
		router.Use(withRateLimit(h.rateLimit, rateLimitWindow))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/build", h.getBuildInfo)

	router.Get("/api/profiles", h.listProfiles)
	router.Get("/api/profiles/{name}", h.getProfile)
	router.Get("/api/profiles/{name}/{section}", h.getProfileSection)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
