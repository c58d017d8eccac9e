// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed response ends up in the error.
const maxErrorBody = 256

var statusErrorMap = map[int]error{
	http.StatusUnauthorized:       ErrAccessDenied,
	http.StatusForbidden:          ErrAccessDenied,
	http.StatusNotFound:           ErrNotFound,
	http.StatusBadGateway:         ErrUnavailable,
	http.StatusServiceUnavailable: ErrUnavailable,
	http.StatusGatewayTimeout:     ErrUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrorMap[status]
	if !ok {
		sentinel = ErrUnexpectedStatus
		if status >= http.StatusInternalServerError {
			sentinel = ErrServerError
		}
	}

	return fmt.Errorf("%w: %s %d: %s", sentinel, resp.Request.URL, status, errorBody(resp))
}

func errorBody(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(body) > maxErrorBody {
		return body[:maxErrorBody] + "..."
	}
	return body
}
