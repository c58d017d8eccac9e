// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/deploy-profiles/models"
)

func TestFillMissing_Maps(t *testing.T) {
	tests := []struct {
		name     string
		existing map[string]string
		fallback map[string]string
		want     map[string]string
	}{
		{
			name:     "non-empty map is kept whole",
			existing: map[string]string{"a": "1"},
			fallback: map[string]string{"a": "x", "b": "2"},
			want:     map[string]string{"a": "1"},
		},
		{
			name:     "nil map is taken from fallback",
			existing: nil,
			fallback: map[string]string{"b": "2"},
			want:     map[string]string{"b": "2"},
		},
		{
			name:     "empty map is taken from fallback",
			existing: map[string]string{},
			fallback: map[string]string{"b": "2"},
			want:     map[string]string{"b": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := models.Profile{Name: "p", Deploy: &models.DeployProfile{Attributes: tt.existing}}
			fallback := models.Profile{Name: "p", Deploy: &models.DeployProfile{Attributes: tt.fallback}}

			require.NoError(t, fillMissing(&existing, fallback))
			assert.Equal(t, tt.want, existing.Deploy.Attributes)
		})
	}
}

func TestFillMissing_Slices(t *testing.T) {
	existing := models.Profile{Name: "p", Deploy: &models.DeployProfile{TargetNamespaces: []string{"a"}}}
	fallback := models.Profile{Name: "p", Deploy: &models.DeployProfile{TargetNamespaces: []string{"b", "c"}}}

	require.NoError(t, fillMissing(&existing, fallback))
	assert.Equal(t, []string{"a"}, existing.Deploy.TargetNamespaces)

	empty := models.Profile{Name: "p", Deploy: &models.DeployProfile{}}
	require.NoError(t, fillMissing(&empty, fallback))
	assert.Equal(t, []string{"b", "c"}, empty.Deploy.TargetNamespaces)
}

func TestFillMissing_SectionTakenWholeIsACopy(t *testing.T) {
	fallback := models.Profile{Name: "p", HelmPush: &models.HelmPushProfile{HelmDir: "charts/"}}
	existing := models.Profile{Name: "p"}

	require.NoError(t, fillMissing(&existing, fallback))

	require.NotNil(t, existing.HelmPush)
	assert.NotSame(t, fallback.HelmPush, existing.HelmPush)
	assert.Equal(t, "charts/", existing.HelmPush.HelmDir)
}

func TestFillMissing_EmbeddedCredentials(t *testing.T) {
	existing := models.Profile{Name: "p", DockerPush: &models.DockerPushProfile{
		RegistryCredentials: models.RegistryCredentials{LoginMethod: models.LoginMethodAWS},
	}}
	fallback := models.Profile{Name: "p", DockerPush: &models.DockerPushProfile{
		RegistryCredentials: models.RegistryCredentials{LoginMethod: models.LoginMethodClassic, AWSProfile: "ci"},
	}}

	require.NoError(t, fillMissing(&existing, fallback))

	assert.Equal(t, models.LoginMethodAWS, existing.DockerPush.LoginMethod)
	assert.Equal(t, "ci", existing.DockerPush.AWSProfile)
}
