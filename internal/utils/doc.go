// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport layers:
// JSON response writing with entity tags, the outbound HTTP client and
// trace id generation.
package utils
