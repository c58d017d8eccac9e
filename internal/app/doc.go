// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the application runtime.
//
// It initializes the profile registry from the configured sources and then
// either serves the HTTP API or prints the resolved profiles once.
package app
