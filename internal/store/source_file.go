// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/deploy-profiles/models"
)

// fileProfileSource reads a [models.ProfileList] document from disk. The
// format is chosen by the file extension.
type fileProfileSource struct {
	path string
}

// NewFileProfileSource returns a [ProfileSource] backed by the YAML or JSON
// file at path. An empty path yields a source with no profiles.
func NewFileProfileSource(path string) ProfileSource {
	return &fileProfileSource{path: path}
}

// Load decodes the file. Unknown keys are rejected so that a misspelled
// field does not silently fall back to a default value.
func (s *fileProfileSource) Load(ctx context.Context) ([]models.Profile, error) {
	if s.path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening profiles file: %w", err)
	}
	defer f.Close()

	var list models.ProfileList
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(f, &list)
	case ".json":
		err = decodeJSON(f, &list)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrDecodingProfiles, s.path, err)
	}

	return list.Profiles, nil
}

func decodeYAML(r io.Reader, list *models.ProfileList) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // Reject unknown fields
	if err := dec.Decode(list); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeJSON(r io.Reader, list *models.ProfileList) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(list); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
