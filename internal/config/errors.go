// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidProfilesConfigs indicates conflicting or malformed profile
	// source settings (for example, a defaults URL that is not http(s)).
	ErrInvalidProfilesConfigs = errors.New("invalid profiles configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound request settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
