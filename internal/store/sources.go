// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/deploy-profiles/internal/adapter"
	"github.com/MKhiriev/deploy-profiles/internal/config"
	"github.com/MKhiriev/deploy-profiles/internal/logger"
)

// Sources groups the two inputs of [ProfileStore.AddProfiles].
type Sources struct {
	// Defaults yields the project-wide default profiles.
	Defaults ProfileSource
	// Profiles yields the explicit, project-local profiles.
	Profiles ProfileSource
}

// NewSources builds the sources described by cfg. Default profiles come
// from cfg.DefaultsURL when it is set and from cfg.DefaultsPath otherwise.
func NewSources(cfg config.Profiles, adapterCfg config.Adapter, logger *logger.Logger) *Sources {
	sources := &Sources{
		Profiles: NewFileProfileSource(cfg.ProfilesPath),
	}

	if cfg.DefaultsURL != "" {
		logger.Info().Str("url", cfg.DefaultsURL).Msg("reading default profiles from remote source")
		sources.Defaults = adapter.NewHTTPProfileAdapter(adapter.HTTPClientConfig{
			URL:     cfg.DefaultsURL,
			Timeout: adapterCfg.RequestTimeout,
		}, logger)
	} else {
		sources.Defaults = NewFileProfileSource(cfg.DefaultsPath)
	}

	return sources
}
