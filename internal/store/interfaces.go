// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_source_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/deploy-profiles/models"
)

// ProfileSource yields a list of profiles, for example from a file on disk
// or from a remote endpoint.
type ProfileSource interface {
	Load(ctx context.Context) ([]models.Profile, error)
}

// ProfileRegistry is the read/write surface of [ProfileStore] used by the
// service layer.
type ProfileRegistry interface {
	AddProfiles(defaults, explicit []models.Profile)
	Profiles() []ValidatedProfile
	Profile(name string) (ValidatedProfile, error)
}
