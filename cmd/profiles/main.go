// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/deploy-profiles/internal/app"
	"github.com/MKhiriev/deploy-profiles/internal/config"
	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/service"
	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(os.Stderr, buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger("profiles", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	sources := store.NewSources(cfg.Profiles, cfg.Adapter, log)
	registry := store.NewProfileStore(nil, log)
	services := service.NewServices(sources, registry, buildInfo, log)

	if err = app.NewApp(services, cfg, os.Stdout, log).Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("profiles run error")
	}
}
