// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/deploy-profiles/internal/config"
	"github.com/MKhiriev/deploy-profiles/internal/handler"
	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/server"
	"github.com/MKhiriev/deploy-profiles/internal/service"
	"github.com/MKhiriev/deploy-profiles/models"
)

// App defines the lifecycle contract of the application.
type App interface {
	// Run blocks until the profiles are printed or the server stops.
	Run(ctx context.Context) error
}

type app struct {
	services *service.Services
	cfg      *config.StructuredConfig
	out      io.Writer

	logger *logger.Logger
}

// NewApp builds the runtime. Printed profiles are written to out.
func NewApp(services *service.Services, cfg *config.StructuredConfig, out io.Writer, logger *logger.Logger) App {
	return &app{
		services: services,
		cfg:      cfg,
		out:      out,
		logger:   logger,
	}
}

func (a *app) Run(ctx context.Context) error {
	if err := a.services.ProfileService.Init(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrInitProfiles, err)
	}

	if a.cfg.Server.HTTPAddress != "" {
		return a.serve(ctx)
	}
	return a.print(ctx)
}

func (a *app) serve(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func (a *app) print(ctx context.Context) error {
	profiles := a.services.ProfileService.Profiles(ctx)

	reports := make([]models.ProfileReport, 0, len(profiles))
	invalid := 0
	for _, p := range profiles {
		report := p.Report(ctx)
		if len(report.Errors) > 0 {
			invalid++
			a.logger.Warn().Str("profile", p.Name()).Strs("errors", report.Errors).Msg("profile is invalid")
		}
		reports = append(reports, report)
	}

	if err := a.encode(models.ProfileReportList{Profiles: reports}); err != nil {
		return fmt.Errorf("error printing profiles: %w", err)
	}

	if a.cfg.Strict && invalid > 0 {
		return fmt.Errorf("%w: %d of %d failed validation", ErrInvalidProfiles, invalid, len(reports))
	}
	return nil
}

func (a *app) encode(doc models.ProfileReportList) error {
	switch a.cfg.Output.Format {
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}
