// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/models"
)

type Services struct {
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(sources *store.Sources, registry store.ProfileRegistry, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		ProfileService: NewProfileService(sources, registry, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
