// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Profiles.DefaultsURL != "" {
		u, err := url.Parse(cfg.Profiles.DefaultsURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%w: defaults url %q must be an absolute http(s) URL",
				ErrInvalidProfilesConfigs, cfg.Profiles.DefaultsURL))
		}
	}

	if cfg.Server.Timeout() < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs))
	}

	if cfg.Server.Limit() < 0 {
		errs = append(errs, fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs))
	}

	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs))
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
		}
	}

	switch cfg.Output.Format {
	case "", OutputFormatJSON, OutputFormatYAML:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format))
	}

	return errors.Join(errs...)
}
