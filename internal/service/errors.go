// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrLoadingDefaultProfiles  = errors.New("error loading default profiles")
	ErrLoadingExplicitProfiles = errors.New("error loading profiles")
)
