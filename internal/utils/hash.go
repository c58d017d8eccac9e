// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ETag returns a weak entity tag for data built from its hex SHA-256. The
// tag is weak because the body may be served gzip-compressed under the same
// tag.
func ETag(data []byte) string {
	sum := sha256.Sum256(data)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}
