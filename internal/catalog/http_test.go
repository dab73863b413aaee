// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/catalog"
)

func newTestHandler(t *testing.T) *catalog.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := catalog.NewService(catalog.NewMemoryRepository(seed(t)), logger)
	return catalog.NewHandler(service)
}

func serve(t *testing.T, handler http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestHandler_Search(t *testing.T) {
	routes := newTestHandler(t).Routes()

	recorder, body := serve(t, routes, http.MethodGet, "/?category=singers&location=Mumbai")
	require.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["result_count"])
	assert.EqualValues(t, 2, data["active_filter_count"])
	assert.Equal(t, false, data["empty"])

	artists := data["artists"].([]any)
	assert.Equal(t, "Arjun Sharma", artists[0].(map[string]any)["name"])
}

func TestHandler_SearchRejectsUnknownCategory(t *testing.T) {
	recorder, body := serve(t, newTestHandler(t).Routes(), http.MethodGet, "/?category=jugglers")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestHandler_GetArtist(t *testing.T) {
	routes := newTestHandler(t).Routes()

	recorder, body := serve(t, routes, http.MethodGet, "/4")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "DJ Vikram", body["data"].(map[string]any)["name"])

	recorder, body = serve(t, routes, http.MethodGet, "/99")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestHandler_Quote(t *testing.T) {
	recorder, body := serve(t, newTestHandler(t).Routes(), http.MethodPost, "/2/quote")
	require.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Quote request sent to Priya Nair! They'll respond within 24 hours.", data["message"])
}

func TestHandler_Registry(t *testing.T) {
	recorder, body := serve(t, http.HandlerFunc(newTestHandler(t).RegistryHandler), http.MethodGet, "/registry")
	require.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].(map[string]any)
	assert.Len(t, data["categories"], 6)
	assert.Len(t, data["locations"], 12)
	assert.Len(t, data["price_brackets"], 5)
	assert.Len(t, data["languages"], 12)
	assert.Len(t, data["experience_levels"], 5)
}
