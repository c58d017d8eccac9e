// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrInitProfiles wraps a failure to load or register profiles.
	ErrInitProfiles = errors.New("error initializing profiles")

	// ErrInvalidProfiles is returned in strict mode when at least one
	// resolved profile fails validation.
	ErrInvalidProfiles = errors.New("invalid profiles")
)
