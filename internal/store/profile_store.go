// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/validators"
	"github.com/MKhiriev/deploy-profiles/models"
)

// ProfileStore is the in-memory registry of deployment profiles keyed by
// name.
//
// Explicit profiles are the only way to create an entry. Default profiles
// can only fill gaps in an entry that already exists; they never add one and
// never overwrite a value that is set.
//
// Every profile is stored as a deep copy, so callers may reuse or mutate the
// slices they pass in. A ProfileStore is safe for concurrent use.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
	// order holds names in the order they were first registered.
	order []string

	validator validators.Validator
	logger    *logger.Logger
}

// NewProfileStore constructs an empty store. validator is attached to every
// [ValidatedProfile] the store hands out; nil selects
// [validators.NewProfileValidator].
func NewProfileStore(validator validators.Validator, logger *logger.Logger) *ProfileStore {
	if validator == nil {
		validator = validators.NewProfileValidator()
	}
	return &ProfileStore{
		profiles:  make(map[string]*models.Profile),
		validator: validator,
		logger:    logger,
	}
}

// AddProfiles registers every explicit profile by name, replacing any prior
// entry with the same name, and then backfills the registered entries from
// the same-named default profiles. Defaults without a registered
// counterpart are ignored.
func (s *ProfileStore) AddProfiles(defaults, explicit []models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range explicit {
		s.put(p)
	}

	for _, d := range defaults {
		s.fillMissingProperties(d)
	}
}

func (s *ProfileStore) put(p models.Profile) {
	clone := p.Clone()
	if _, ok := s.profiles[p.Name]; ok {
		s.logger.Debug().Str("profile", p.Name).Msg("replacing previously registered profile")
	} else {
		s.order = append(s.order, p.Name)
	}
	s.profiles[p.Name] = &clone
}

func (s *ProfileStore) fillMissingProperties(defaults models.Profile) {
	existing, ok := s.profiles[defaults.Name]
	if !ok {
		s.logger.Debug().Str("profile", defaults.Name).Msg("ignoring default profile without explicit counterpart")
		return
	}

	// merge into a copy so a failed merge leaves the entry as it was
	merged := existing.Clone()
	if err := fillMissing(&merged, defaults); err != nil {
		s.logger.Error().Err(err).Str("profile", defaults.Name).Msg("error applying default profile")
		return
	}
	s.profiles[defaults.Name] = &merged
}

// Profiles returns a validated view of every registered profile in
// first-registration order.
func (s *ProfileStore) Profiles() []ValidatedProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ValidatedProfile, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, newValidatedProfile(*s.profiles[name], s.validator))
	}
	return out
}

// Profile returns the validated view of a single profile.
func (s *ProfileStore) Profile(name string) (ValidatedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[name]
	if !ok {
		return ValidatedProfile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return newValidatedProfile(*p, s.validator), nil
}
