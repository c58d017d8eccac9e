// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so all of its methods are available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that gives up on a request
// after timeout and expects JSON responses. A non-positive timeout leaves
// requests unbounded.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	cli := resty.New().SetHeader("Accept", "application/json")
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}
	return &HTTPClient{Client: cli}
}
