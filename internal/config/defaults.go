// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultServerRequestTimeout  = 30 * time.Second
	defaultAdapterRequestTimeout = 15 * time.Second
	defaultServerRateLimit       = 600
	defaultLogLevel              = "info"
	defaultOutputFormat          = OutputFormatJSON
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	requestTimeout, rateLimit := defaultServerRequestTimeout, defaultServerRateLimit

	return &StructuredConfig{
		Server: Server{
			RequestTimeout: &requestTimeout,
			RateLimit:      &rateLimit,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterRequestTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
