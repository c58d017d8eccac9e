// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrUnknownSection is returned when a request names a sub-group that a
// profile does not have.
var ErrUnknownSection = errors.New("unknown profile section")
