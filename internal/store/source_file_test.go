// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/deploy-profiles/models"
)

func writeProfilesFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

const yamlProfiles = `
profiles:
  - name: prod
    deploy:
      helmDir: charts/
      targetNamespaces: [prod, prod-canary]
      attributes:
        replicas: "3"
    dockerPush:
      loginMethod: aws
      awsProfile: ci
      registryRoot: 1234.dkr.ecr.eu-central-1.amazonaws.com
  - name: dev
`

func TestFileProfileSource_YAML(t *testing.T) {
	for _, ext := range []string{"profiles.yaml", "profiles.YML"} {
		t.Run(ext, func(t *testing.T) {
			src := NewFileProfileSource(writeProfilesFile(t, ext, yamlProfiles))

			got, err := src.Load(context.Background())

			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "prod", got[0].Name)
			require.NotNil(t, got[0].Deploy)
			assert.Equal(t, []string{"prod", "prod-canary"}, got[0].Deploy.TargetNamespaces)
			assert.Equal(t, map[string]string{"replicas": "3"}, got[0].Deploy.Attributes)
			require.NotNil(t, got[0].DockerPush)
			assert.Equal(t, models.LoginMethodAWS, got[0].DockerPush.LoginMethod)
			assert.Equal(t, "ci", got[0].DockerPush.AWSProfile)
			assert.Equal(t, "dev", got[1].Name)
			assert.Nil(t, got[1].Deploy)
		})
	}
}

func TestFileProfileSource_JSON(t *testing.T) {
	src := NewFileProfileSource(writeProfilesFile(t, "profiles.json", `{
		"profiles": [
			{"name": "prod", "helmPush": {"helmDir": "charts/", "repositoryUrl": "https://charts"}}
		]
	}`))

	got, err := src.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].HelmPush)
	assert.Equal(t, "https://charts", got[0].HelmPush.RepositoryURL)
}

func TestFileProfileSource_EmptyPath(t *testing.T) {
	got, err := NewFileProfileSource("").Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileProfileSource_EmptyFile(t *testing.T) {
	got, err := NewFileProfileSource(writeProfilesFile(t, "empty.yaml", "")).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileProfileSource_MissingFile(t *testing.T) {
	_, err := NewFileProfileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileProfileSource_UnsupportedExtension(t *testing.T) {
	_, err := NewFileProfileSource(writeProfilesFile(t, "profiles.toml", "")).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileProfileSource_UnknownFields(t *testing.T) {
	tests := map[string]string{
		"profiles.yaml": "profiles:\n  - name: prod\n    dockerBiuld:\n      dockerDir: d\n",
		"profiles.json": `{"profiles": [{"name": "prod", "dockerBiuld": {}}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFileProfileSource(writeProfilesFile(t, name, body)).Load(context.Background())
			assert.ErrorIs(t, err, ErrDecodingProfiles)
		})
	}
}

func TestFileProfileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileProfileSource(writeProfilesFile(t, "p.yaml", yamlProfiles)).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
