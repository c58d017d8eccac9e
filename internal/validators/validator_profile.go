// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/deploy-profiles/models"
)

// Field name constants used to scope validation of a [models.Profile] to
// particular sections.
const (
	FieldName        = "name"
	FieldDeploy      = "deploy"
	FieldDockerBuild = "dockerBuild"
	FieldDockerLogin = "dockerLogin"
	FieldDockerPush  = "dockerPush"
	FieldHelmPush    = "helmPush"
)

// ProfileValidator implements [Validator] for [models.Profile] and each of
// its sub-groups. Both value and pointer forms are accepted.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator and returns it as
// the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// For a profile, fields select the sections to check. Without fields the
// name and every configured section are checked and all failures are
// joined; a section named explicitly but not configured yields
// [ErrSubGroupMissing]. Fields are ignored for sub-group values.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		return v.validateProfile(ctx, *value, fields...)

	case models.DeployProfile:
		return validateDeploy(value)
	case *models.DeployProfile:
		return validateDeploy(*value)

	case models.DockerBuildProfile:
		return validateDockerBuild(value)
	case *models.DockerBuildProfile:
		return validateDockerBuild(*value)

	case models.DockerLoginProfile:
		return validateRegistryCredentials(value.RegistryCredentials)
	case *models.DockerLoginProfile:
		return validateRegistryCredentials(value.RegistryCredentials)

	case models.DockerPushProfile:
		return validateRegistryCredentials(value.RegistryCredentials)
	case *models.DockerPushProfile:
		return validateRegistryCredentials(value.RegistryCredentials)

	case models.HelmPushProfile:
		return validateHelmPush(value)
	case *models.HelmPushProfile:
		return validateHelmPush(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfile(ctx context.Context, p models.Profile, fields ...string) error {
	explicit := len(fields) > 0
	if !explicit {
		fields = []string{FieldName, FieldDeploy, FieldDockerBuild, FieldDockerLogin, FieldDockerPush, FieldHelmPush}
	}

	var errs []error
	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			if p.Name == "" {
				err = ErrEmptyProfileName
			}
		case FieldDeploy:
			err = validateSection(ctx, v, p.Deploy, explicit)
		case FieldDockerBuild:
			err = validateSection(ctx, v, p.DockerBuild, explicit)
		case FieldDockerLogin:
			err = validateSection(ctx, v, p.DockerLogin, explicit)
		case FieldDockerPush:
			err = validateSection(ctx, v, p.DockerPush, explicit)
		case FieldHelmPush:
			err = validateSection(ctx, v, p.HelmPush, explicit)
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f, err))
		}
	}

	return errors.Join(errs...)
}

// validateSection validates a sub-group pointer. A nil section is only an
// error when it was requested explicitly.
func validateSection[T any](ctx context.Context, v *ProfileValidator, section *T, required bool) error {
	if section == nil {
		if required {
			return ErrSubGroupMissing
		}
		return nil
	}
	return v.Validate(ctx, section)
}

func validateDeploy(d models.DeployProfile) error {
	if d.HelmDir == "" {
		return ErrEmptyHelmDir
	}
	if len(d.TargetNamespaces) == 0 {
		return ErrEmptyTargetNamespaces
	}
	return nil
}

func validateDockerBuild(b models.DockerBuildProfile) error {
	if b.DockerDir == "" {
		return ErrEmptyDockerDir
	}
	return nil
}

func validateRegistryCredentials(c models.RegistryCredentials) error {
	if c.RegistryRoot == "" {
		return ErrEmptyRegistryRoot
	}

	switch method := c.LoginMethod.OrDefault(); method {
	case models.LoginMethodClassic:
		if c.LoginUsername == "" || c.LoginPassword == "" {
			return ErrEmptyLoginCredentials
		}
	case models.LoginMethodAWS:
		if c.AWSProfile == "" {
			return ErrEmptyAWSProfile
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLoginMethod, method)
	}

	return nil
}

func validateHelmPush(h models.HelmPushProfile) error {
	if h.HelmDir == "" {
		return ErrEmptyHelmDir
	}
	if h.RepositoryURL == "" {
		return ErrEmptyRepositoryURL
	}
	return nil
}
