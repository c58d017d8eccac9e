// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/utils"
	"github.com/MKhiriev/deploy-profiles/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPProfileAdapter].
type HTTPClientConfig struct {
	// URL is the absolute address of the profile list document.
	URL     string
	Timeout time.Duration
}

type httpProfileAdapter struct {
	client *utils.HTTPClient
	url    string
	logger *logger.Logger
}

// NewHTTPProfileAdapter returns a [ProfileAdapter] that GETs a JSON
// [models.ProfileList] from cfg.URL.
func NewHTTPProfileAdapter(cfg HTTPClientConfig, logger *logger.Logger) ProfileAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &httpProfileAdapter{
		client: utils.NewHTTPClient(cfg.Timeout),
		url:    cfg.URL,
		logger: logger,
	}
}

func (h *httpProfileAdapter) Load(ctx context.Context) ([]models.Profile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.url)
	if err != nil {
		return nil, fmt.Errorf("profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.DisallowUnknownFields()

	var list models.ProfileList
	if err = dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	h.logger.Debug().
		Str("url", h.url).
		Int("profiles", len(list.Profiles)).
		Dur("duration", resp.Time()).
		Msg("fetched remote profiles")

	return list.Profiles, nil
}
