// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	err := WriteJSON(rec, req, map[string]string{"key": "value"}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, rec.Body.String())
	assert.Equal(t, ETag([]byte(`{"key":"value"}`)), rec.Header().Get("ETag"))
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, WriteJSON(rec, req, map[string]string{"error": "not found"}, http.StatusNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteJSON_NotModified(t *testing.T) {
	body := []byte(`["a"]`)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", ETag(body))
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, req, []string{"a"}, http.StatusOK))

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWriteJSON_StaleTagGetsBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", `"stale"`)
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, req, []string{"a"}, http.StatusOK))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["a"]`, rec.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	// channels cannot be marshaled to JSON
	err := WriteJSON(rec, req, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestETag(t *testing.T) {
	a := ETag([]byte("profiles"))

	assert.Equal(t, a, ETag([]byte("profiles")))
	assert.NotEqual(t, a, ETag([]byte("profile")))
	assert.Len(t, a, 64+4)
	assert.True(t, strings.HasPrefix(a, `W/"`), "tag must be weak: %s", a)
}

func TestETagMatches(t *testing.T) {
	tag := ETag([]byte("profiles"))
	opaque := strings.TrimPrefix(tag, "W/")

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "empty header", header: "", want: false},
		{name: "wildcard", header: "*", want: true},
		{name: "same weak tag", header: tag, want: true},
		{name: "strong form of the tag", header: opaque, want: true},
		{name: "tag inside a list", header: `"other", ` + tag + `, W/"third"`, want: true},
		{name: "list without the tag", header: `"other", W/"third"`, want: false},
		{name: "different tag", header: `W/"stale"`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ETagMatches(tt.header, tag))
		})
	}
}

func TestWriteJSON_NotModifiedForTagList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", `"v1", `+ETag([]byte(`["a"]`)))
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, req, []string{"a"}, http.StatusOK))

	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestNewHTTPClient(t *testing.T) {
	cli := NewHTTPClient(3 * time.Second)

	require.NotNil(t, cli.Client)
	assert.Equal(t, "application/json", cli.Header.Get("Accept"))
	assert.NotSame(t, cli.Client, NewHTTPClient(0).Client)
}

func TestNewTraceID(t *testing.T) {
	id, err := uuid.Parse(NewTraceID())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, NewTraceID(), NewTraceID())
}
