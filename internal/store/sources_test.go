// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/deploy-profiles/internal/config"
	"github.com/MKhiriev/deploy-profiles/internal/logger"
)

func TestNewSources_FileDefaults(t *testing.T) {
	s := NewSources(config.Profiles{DefaultsPath: "d.yaml", ProfilesPath: "p.yaml"}, config.Adapter{}, logger.Nop())

	assert.Equal(t, &fileProfileSource{path: "d.yaml"}, s.Defaults)
	assert.Equal(t, &fileProfileSource{path: "p.yaml"}, s.Profiles)
}

func TestNewSources_URLWins(t *testing.T) {
	s := NewSources(config.Profiles{
		DefaultsPath: "d.yaml",
		DefaultsURL:  "https://example.com/defaults.json",
	}, config.Adapter{}, logger.Nop())

	_, isFile := s.Defaults.(*fileProfileSource)
	assert.False(t, isFile)
	assert.NotNil(t, s.Defaults)
}
