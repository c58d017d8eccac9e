// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON serializes data and writes it with statusCode and an ETag
// computed over the body.
//
// When statusCode is 200 and r carries an If-None-Match header that matches
// the tag, only 304 Not Modified is written. A marshaling failure is answered
// with 500 and returned.
func WriteJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	tag := ETag(body)
	w.Header().Set("ETag", tag)

	if statusCode == http.StatusOK && ETagMatches(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}

// ETagMatches reports whether an If-None-Match header value matches tag.
// The header is either "*" or a comma-separated list of entity tags, and
// tags are compared weakly: a W/ prefix on either side is ignored.
func ETagMatches(header, tag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}

	want := strings.TrimPrefix(tag, "W/")
	for candidate := range strings.SplitSeq(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == want {
			return true
		}
	}
	return false
}
