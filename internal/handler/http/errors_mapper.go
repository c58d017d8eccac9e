// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/deploy-profiles/internal/store"
	"github.com/MKhiriev/deploy-profiles/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order; the first match wins. Lookup failures
// come first so a joined error that also carries validation failures still
// maps to 404.
var errorStatuses = []errorStatus{
	{ErrUnknownSection, http.StatusNotFound},
	{store.ErrProfileNotFound, http.StatusNotFound},
	{validators.ErrSubGroupMissing, http.StatusNotFound},

	{validators.ErrEmptyProfileName, http.StatusUnprocessableEntity},
	{validators.ErrEmptyDockerDir, http.StatusUnprocessableEntity},
	{validators.ErrEmptyRegistryRoot, http.StatusUnprocessableEntity},
	{validators.ErrInvalidLoginMethod, http.StatusUnprocessableEntity},
	{validators.ErrEmptyLoginCredentials, http.StatusUnprocessableEntity},
	{validators.ErrEmptyAWSProfile, http.StatusUnprocessableEntity},
	{validators.ErrEmptyHelmDir, http.StatusUnprocessableEntity},
	{validators.ErrEmptyRepositoryURL, http.StatusUnprocessableEntity},
	{validators.ErrEmptyTargetNamespaces, http.StatusUnprocessableEntity},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
