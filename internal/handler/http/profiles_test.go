// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/internal/validators"
	"github.com/MKhiriev/deploy-profiles/models"
)

var (
	prodProfile = models.Profile{
		Name:        "prod",
		Deploy:      &models.DeployProfile{HelmDir: "charts/", TargetNamespaces: []string{"prod"}},
		DockerBuild: &models.DockerBuildProfile{DockerDir: "docker/", Version: "1.0"},
		DockerPush: &models.DockerPushProfile{RegistryCredentials: models.RegistryCredentials{
			RegistryRoot: "registry.example.com", LoginUsername: "ci", LoginPassword: "secret",
		}},
	}
	brokenProfile = models.Profile{
		Name:     "broken",
		HelmPush: &models.HelmPushProfile{HelmDir: "charts/"},
	}
)

func decodeViews(t *testing.T, body []byte) []models.ProfileReport {
	t.Helper()
	var views []models.ProfileReport
	require.NoError(t, json.Unmarshal(body, &views))
	return views
}

// ─────────────────────────────────────────────
// GET /api/profiles
// ─────────────────────────────────────────────

func TestListProfiles(t *testing.T) {
	th := newTestHandler(t)
	th.profiles.EXPECT().Profiles(gomock.Any()).
		Return(validatedProfiles(t, prodProfile, brokenProfile))

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	views := decodeViews(t, rec.Body.Bytes())
	require.Len(t, views, 2)

	assert.Equal(t, "prod", views[0].Profile.Name)
	assert.Empty(t, views[0].Errors)
	assert.Equal(t, "docker/", views[0].Profile.DockerBuild.DockerDir)

	assert.Equal(t, "broken", views[1].Profile.Name)
	require.Len(t, views[1].Errors, 1)
	assert.Contains(t, views[1].Errors[0], validators.ErrEmptyRepositoryURL.Error())
}

func TestListProfiles_Empty(t *testing.T) {
	th := newTestHandler(t)
	th.profiles.EXPECT().Profiles(gomock.Any()).Return(nil)

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProfiles_ValidProfileHasEmptyErrorList(t *testing.T) {
	th := newTestHandler(t)
	th.profiles.EXPECT().Profiles(gomock.Any()).Return(validatedProfiles(t, models.Profile{Name: "bare"}))

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles")

	assert.JSONEq(t, `[{"profile":{"name":"bare"},"errors":[]}]`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/profiles/{name}
// ─────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	th := newTestHandler(t)
	prod := validatedProfiles(t, prodProfile)[0]
	th.profiles.EXPECT().Profile(gomock.Any(), "prod").Return(prod, nil)

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles/prod")

	require.Equal(t, http.StatusOK, rec.Code)
	var view models.ProfileReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, prodProfile, view.Profile)
	assert.Empty(t, view.Errors)
}

func TestGetProfile_NotFound(t *testing.T) {
	th := newTestHandler(t)
	th.profiles.EXPECT().Profile(gomock.Any(), "qa").
		Return(store.ValidatedProfile{}, fmt.Errorf("%w: %q", store.ErrProfileNotFound, "qa"))

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles/qa")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var view errorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Errors, 1)
	assert.Contains(t, view.Errors[0], "qa")
}

// ─────────────────────────────────────────────
// GET /api/profiles/{name}/{section}
// ─────────────────────────────────────────────

func TestGetProfileSection(t *testing.T) {
	prod := validatedProfiles(t, prodProfile)[0]

	tests := []struct {
		name       string
		section    string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "docker build",
			section:    validators.FieldDockerBuild,
			wantStatus: http.StatusOK,
			wantBody:   `{"dockerDir":"docker/","version":"1.0"}`,
		},
		{
			name:       "docker push resolves login method",
			section:    validators.FieldDockerPush,
			wantStatus: http.StatusOK,
			wantBody: `{"loginMethod":"classic","registryRoot":"registry.example.com",` +
				`"loginUsername":"ci","loginPassword":"secret"}`,
		},
		{
			name:       "deploy",
			section:    validators.FieldDeploy,
			wantStatus: http.StatusOK,
			wantBody:   `{"helmDir":"charts/","targetNamespaces":["prod"]}`,
		},
		{
			name:       "section not configured",
			section:    validators.FieldHelmPush,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown section",
			section:    "kubectl",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.profiles.EXPECT().Profile(gomock.Any(), "prod").Return(prod, nil)

			rec := serve(t, th.handler, http.MethodGet, "/api/profiles/prod/"+tt.section)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGetProfileSection_InvalidSection(t *testing.T) {
	th := newTestHandler(t)
	broken := validatedProfiles(t, brokenProfile)[0]
	th.profiles.EXPECT().Profile(gomock.Any(), "broken").Return(broken, nil)

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles/broken/helmPush")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var view errorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Errors, 1)
	assert.Contains(t, view.Errors[0], validators.ErrEmptyRepositoryURL.Error())
}

func TestGetProfileSection_UnknownProfile(t *testing.T) {
	th := newTestHandler(t)
	th.profiles.EXPECT().Profile(gomock.Any(), "qa").Return(store.ValidatedProfile{}, store.ErrProfileNotFound)

	rec := serve(t, th.handler, http.MethodGet, "/api/profiles/qa/deploy")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", store.ErrProfileNotFound), http.StatusNotFound},
		{ErrUnknownSection, http.StatusNotFound},
		{validators.ErrSubGroupMissing, http.StatusNotFound},
		{validators.ErrEmptyDockerDir, http.StatusUnprocessableEntity},
		{validators.ErrInvalidLoginMethod, http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_JoinedErrorIsStable(t *testing.T) {
	joined := errors.Join(
		fmt.Errorf("deploy: %w", validators.ErrEmptyHelmDir),
		fmt.Errorf("helmPush: %w", validators.ErrSubGroupMissing),
		fmt.Errorf("dockerBuild: %w", validators.ErrEmptyDockerDir),
	)

	for range 50 {
		require.Equal(t, http.StatusNotFound, statusFromError(joined))
	}
}

func TestListProfiles_ConditionalGet(t *testing.T) {
	th := newTestHandler(t)
	profiles := validatedProfiles(t, prodProfile)
	th.profiles.EXPECT().Profiles(gomock.Any()).Return(profiles).Times(2)
	router := th.handler.Init()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))
	require.Equal(t, http.StatusOK, first.Code)
	tag := first.Header().Get("ETag")
	require.NotEmpty(t, tag)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	req.Header.Set("If-None-Match", tag)
	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}

// TestListProfiles_ConditionalGetAcrossEncodings checks that a tag received
// with a gzip body is weak and still validates a plain request.
func TestListProfiles_ConditionalGetAcrossEncodings(t *testing.T) {
	th := newTestHandler(t)
	profiles := validatedProfiles(t, prodProfile)
	th.profiles.EXPECT().Profiles(gomock.Any()).Return(profiles).Times(2)
	router := th.handler.Init()

	gzipReq := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	gzipReq.Header.Set("Accept-Encoding", "gzip")
	first := httptest.NewRecorder()
	router.ServeHTTP(first, gzipReq)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "gzip", first.Header().Get("Content-Encoding"))
	tag := first.Header().Get("ETag")
	require.True(t, strings.HasPrefix(tag, `W/"`), "tag must be weak: %s", tag)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	req.Header.Set("If-None-Match", `"unrelated", `+tag)
	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)

	assert.Equal(t, http.StatusNotModified, second.Code)
}
