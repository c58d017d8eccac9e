// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to remote profile
// sources.
//
// The package ships an HTTP implementation ([NewHTTPProfileAdapter]) that
// fetches a profile list document over HTTP(S). Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/deploy-profiles/models"
)

// ProfileAdapter fetches profiles from a remote endpoint. It satisfies
// store.ProfileSource.
type ProfileAdapter interface {
	Load(ctx context.Context) ([]models.Profile, error)
}
