// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/deploy-profiles/internal/logger"
	"github.com/MKhiriev/deploy-profiles/internal/utils"
)

type errorView struct {
	Errors []string `json:"errors"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if err := utils.WriteJSON(w, r, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("unexpected error")
		http.Error(w, http.StatusText(status), status)
		return
	}

	h.writeJSON(w, r, errorView{Errors: []string{err.Error()}}, status)
}
