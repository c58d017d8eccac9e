// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/deploy-profiles/internal/validators"
	"github.com/MKhiriev/deploy-profiles/models"
)

// ValidatedProfile is a read-only view of a resolved profile. Each accessor
// returns a section only after it passed validation, so callers wiring a
// build, login, push or deploy step never see a half-configured section.
type ValidatedProfile struct {
	profile   models.Profile
	validator validators.Validator
}

func newValidatedProfile(p models.Profile, v validators.Validator) ValidatedProfile {
	return ValidatedProfile{profile: p.Clone(), validator: v}
}

// Name returns the profile name.
func (p ValidatedProfile) Name() string {
	return p.profile.Name
}

// Raw returns a deep copy of the resolved, unvalidated profile.
func (p ValidatedProfile) Raw() models.Profile {
	return p.profile.Clone()
}

// Validate checks the name and every configured section.
func (p ValidatedProfile) Validate(ctx context.Context) error {
	return p.check(ctx)
}

// ValidationErrors lists every validation failure of the profile, one entry
// per failing section. It returns nil for a valid profile.
func (p ValidatedProfile) ValidationErrors(ctx context.Context) []string {
	err := p.validator.Validate(ctx, p.profile)
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}

	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, e.Error())
	}
	return out
}

// Report returns the resolved profile with its validation failures. Errors
// is an empty, non-nil slice for a valid profile.
func (p ValidatedProfile) Report(ctx context.Context) models.ProfileReport {
	errs := p.ValidationErrors(ctx)
	if errs == nil {
		errs = []string{}
	}
	return models.ProfileReport{Profile: p.Raw(), Errors: errs}
}

func (p ValidatedProfile) Deploy(ctx context.Context) (models.DeployProfile, error) {
	if err := p.check(ctx, validators.FieldDeploy); err != nil {
		return models.DeployProfile{}, err
	}
	return *p.Raw().Deploy, nil
}

func (p ValidatedProfile) DockerBuild(ctx context.Context) (models.DockerBuildProfile, error) {
	if err := p.check(ctx, validators.FieldDockerBuild); err != nil {
		return models.DockerBuildProfile{}, err
	}
	return *p.profile.DockerBuild, nil
}

// DockerLogin returns the login section with LoginMethod resolved to its
// default when it was left unset.
func (p ValidatedProfile) DockerLogin(ctx context.Context) (models.DockerLoginProfile, error) {
	if err := p.check(ctx, validators.FieldDockerLogin); err != nil {
		return models.DockerLoginProfile{}, err
	}
	out := *p.profile.DockerLogin
	out.LoginMethod = out.LoginMethod.OrDefault()
	return out, nil
}

// DockerPush returns the push section with LoginMethod resolved to its
// default when it was left unset.
func (p ValidatedProfile) DockerPush(ctx context.Context) (models.DockerPushProfile, error) {
	if err := p.check(ctx, validators.FieldDockerPush); err != nil {
		return models.DockerPushProfile{}, err
	}
	out := *p.profile.DockerPush
	out.LoginMethod = out.LoginMethod.OrDefault()
	return out, nil
}

func (p ValidatedProfile) HelmPush(ctx context.Context) (models.HelmPushProfile, error) {
	if err := p.check(ctx, validators.FieldHelmPush); err != nil {
		return models.HelmPushProfile{}, err
	}
	return *p.profile.HelmPush, nil
}

func (p ValidatedProfile) check(ctx context.Context, fields ...string) error {
	if err := p.validator.Validate(ctx, p.profile, fields...); err != nil {
		return fmt.Errorf("profile %q: %w", p.profile.Name, err)
	}
	return nil
}
