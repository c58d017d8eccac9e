// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/internal/validators"
	"github.com/MKhiriev/deploy-profiles/models"
)

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profiles := h.services.ProfileService.Profiles(ctx)
	reports := make([]models.ProfileReport, 0, len(profiles))
	for _, p := range profiles {
		reports = append(reports, p.Report(ctx))
	}

	h.writeJSON(w, r, reports, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	p, err := h.services.ProfileService.Profile(ctx, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, p.Report(ctx), http.StatusOK)
}

func (h *Handler) getProfileSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")
	section := chi.URLParam(r, "section")

	p, err := h.services.ProfileService.Profile(ctx, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	value, err := resolveSection(ctx, p, section)
	if err != nil {
		log.Debug().Err(err).Str("profile", name).Str("section", section).Msg("section rejected")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, value, http.StatusOK)
}

// resolveSection returns the validated sub-group named by section.
func resolveSection(ctx context.Context, p store.ValidatedProfile, section string) (any, error) {
	switch section {
	case validators.FieldDeploy:
		return p.Deploy(ctx)
	case validators.FieldDockerBuild:
		return p.DockerBuild(ctx)
	case validators.FieldDockerLogin:
		return p.DockerLogin(ctx)
	case validators.FieldDockerPush:
		return p.DockerPush(ctx)
	case validators.FieldHelmPush:
		return p.HelmPush(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
}
