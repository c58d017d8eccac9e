// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrAccessDenied covers 401 and 403 from the defaults endpoint.
	ErrAccessDenied = errors.New("access to default profiles denied")
	// ErrNotFound is returned when the defaults document does not exist.
	ErrNotFound = errors.New("default profiles not found")
	// ErrUnavailable covers gateway errors and 503, which are usually
	// transient.
	ErrUnavailable = errors.New("default profiles source unavailable")
	// ErrServerError covers every other 5xx.
	ErrServerError = errors.New("default profiles source failed")
	// ErrUnexpectedStatus covers any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status from default profiles source")

	ErrDecodingResponse = errors.New("error decoding profiles response")
)
