// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// deploy-profiles application. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and
// finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Profiles locates the default and explicit profile lists.
	Profiles Profiles `envPrefix:"PROFILES_"`

	// Server holds the HTTP API settings. The API is only started when
	// HTTPAddress is non-empty.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for outbound calls to remote profile sources.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Output controls how the CLI prints resolved profiles.
	Output Output `envPrefix:"OUTPUT_"`

	// Strict makes the CLI exit with a non-zero status when any resolved
	// profile fails validation.
	// Env: STRICT
	Strict bool `env:"STRICT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Profiles tells where the two profile lists are read from.
type Profiles struct {
	// DefaultsPath is a YAML or JSON file with the project-wide default
	// profiles.
	// Env: PROFILES_DEFAULTS_PATH
	DefaultsPath string `env:"DEFAULTS_PATH"`

	// DefaultsURL, when set, replaces DefaultsPath: default profiles are
	// fetched from this HTTP(S) endpoint as JSON.
	// Env: PROFILES_DEFAULTS_URL
	DefaultsURL string `env:"DEFAULTS_URL"`

	// ProfilesPath is a YAML or JSON file with the explicit profiles.
	// Env: PROFILES_PATH
	ProfilesPath string `env:"PATH"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request. Zero
	// disables the timeout; nil means the layer left it unset.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout *time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests a single client IP may make per
	// minute. Zero disables limiting; nil means the layer left it unset.
	// Env: SERVER_RATE_LIMIT
	RateLimit *int `env:"RATE_LIMIT"`
}

// Timeout returns RequestTimeout, or zero when it is unset.
func (s Server) Timeout() time.Duration {
	if s.RequestTimeout == nil {
		return 0
	}
	return *s.RequestTimeout
}

// Limit returns RateLimit, or zero when it is unset.
func (s Server) Limit() int {
	if s.RateLimit == nil {
		return 0
	}
	return *s.RateLimit
}

// Adapter holds settings for outbound HTTP calls.
type Adapter struct {
	// RequestTimeout bounds a single request to a remote profile source.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output formats supported by the CLI.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Output holds CLI printing settings.
type Output struct {
	// Format is OutputFormatJSON or OutputFormatYAML.
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags (parsed from args)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
