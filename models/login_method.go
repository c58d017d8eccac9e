// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginMethod selects how credentials for a docker registry are obtained.
type LoginMethod string

const (
	// LoginMethodClassic logs in with a static username and password.
	LoginMethodClassic LoginMethod = "classic"

	// LoginMethodAWS obtains a temporary ECR token through the AWS CLI
	// using the configured AWS profile.
	LoginMethodAWS LoginMethod = "aws"
)

// IsValid reports whether m is one of the supported login methods.
func (m LoginMethod) IsValid() bool {
	switch m {
	case LoginMethodClassic, LoginMethodAWS:
		return true
	default:
		return false
	}
}

// OrDefault returns m, or [LoginMethodClassic] when m is unset.
func (m LoginMethod) OrDefault() LoginMethod {
	if m == "" {
		return LoginMethodClassic
	}
	return m
}
