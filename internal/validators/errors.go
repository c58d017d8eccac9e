// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProfileName      = errors.New("profile name is required")
	ErrSubGroupMissing       = errors.New("profile section is not configured")
	ErrEmptyDockerDir        = errors.New("docker dir is required")
	ErrEmptyRegistryRoot     = errors.New("registry root is required")
	ErrInvalidLoginMethod    = errors.New("invalid login method")
	ErrEmptyLoginCredentials = errors.New("login username and password are required for classic login")
	ErrEmptyAWSProfile       = errors.New("aws profile is required for aws login")
	ErrEmptyHelmDir          = errors.New("helm dir is required")
	ErrEmptyRepositoryURL    = errors.New("helm repository url is required")
	ErrEmptyTargetNamespaces = errors.New("at least one target namespace is required")
)
