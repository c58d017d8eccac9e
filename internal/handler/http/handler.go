// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/deploy-profiles/internal/config"
	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	rateLimit      int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Timeout(),
		rateLimit:      cfg.Limit(),
		logger:         logger,
	}
}
