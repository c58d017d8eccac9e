// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/metrics"
	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/models"
)

type profileService struct {
	sources  *store.Sources
	registry store.ProfileRegistry

	logger *logger.Logger
}

func NewProfileService(sources *store.Sources, registry store.ProfileRegistry, logger *logger.Logger) ProfileService {
	return &profileService{
		sources:  sources,
		registry: registry,
		logger:   logger,
	}
}

// Init loads both sources concurrently. Both loads always run to the end
// so that failures of both sources are reported together.
func (s *profileService) Init(ctx context.Context) error {
	var (
		defaults, explicit       []models.Profile
		defaultsErr, explicitErr error
		wg                       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		defaults, defaultsErr = s.load(ctx, s.sources.Defaults, metrics.SourceDefaults, ErrLoadingDefaultProfiles)
	}()
	go func() {
		defer wg.Done()
		explicit, explicitErr = s.load(ctx, s.sources.Profiles, metrics.SourceExplicit, ErrLoadingExplicitProfiles)
	}()
	wg.Wait()

	if err := errors.Join(defaultsErr, explicitErr); err != nil {
		return err
	}

	s.registry.AddProfiles(defaults, explicit)
	registered := len(s.registry.Profiles())
	metrics.ProfilesRegistered.Set(float64(registered))

	s.logger.Info().
		Int("defaults", len(defaults)).
		Int("explicit", len(explicit)).
		Int("registered", registered).
		Msg("profiles registered")

	return nil
}

func (s *profileService) load(ctx context.Context, src store.ProfileSource, kind string, sentinel error) ([]models.Profile, error) {
	profiles, err := src.Load(ctx)
	metrics.SourceLoadsTotal.WithLabelValues(kind, metrics.LoadResult(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel, err)
	}
	return profiles, nil
}

func (s *profileService) Profiles(ctx context.Context) []store.ValidatedProfile {
	return s.registry.Profiles()
}

func (s *profileService) Profile(ctx context.Context, name string) (store.ValidatedProfile, error) {
	p, err := s.registry.Profile(name)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("profile", name).Msg("profile lookup failed")
		return store.ValidatedProfile{}, err
	}
	return p, nil
}
