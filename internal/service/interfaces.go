// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/models"
)

// ProfileService resolves deployment profiles from the configured sources
// and exposes them to the transport layer.
type ProfileService interface {
	// Init loads default and explicit profiles and registers them. The
	// registry is left untouched when either source fails.
	Init(ctx context.Context) error

	Profiles(ctx context.Context) []store.ValidatedProfile
	Profile(ctx context.Context, name string) (store.ValidatedProfile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
