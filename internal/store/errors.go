// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrProfileNotFound is returned by lookups for a name that was never
	// registered by an explicit profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnsupportedFormat is returned by the file source for extensions
	// other than .yaml, .yml and .json.
	ErrUnsupportedFormat = errors.New("unsupported profile file format")

	// ErrDecodingProfiles is returned when a profile document is malformed
	// or carries unknown keys.
	ErrDecodingProfiles = errors.New("error decoding profiles")
)
