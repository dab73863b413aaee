// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/onboarding"
)

func send(t *testing.T, handler http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	if recorder.Body.Len() == 0 {
		return recorder.Code, nil
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder.Code, decoded
}

func TestHandler_WizardFlow(t *testing.T) {
	sink := &mockSink{}
	sink.On("Create", mock.Anything, mock.Anything).Run(stamp("sub-9")).Return(nil).Once()
	routes := onboarding.NewHandler(newService(sink, 0)).Routes()

	code, body := send(t, routes, http.MethodPost, "/", "")
	require.Equal(t, http.StatusCreated, code)
	draftID := body["data"].(map[string]any)["id"].(string)
	base := "/" + draftID

	code, body = send(t, routes, http.MethodPost, base+"/advance", "")
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Len(t, body["details"], 4)

	patch, err := json.Marshal(validPatch())
	require.NoError(t, err)
	code, _ = send(t, routes, http.MethodPatch, base, string(patch))
	require.Equal(t, http.StatusOK, code)

	for range 3 {
		code, _ = send(t, routes, http.MethodPost, base+"/advance", "")
		require.Equal(t, http.StatusOK, code)
	}

	code, body = send(t, routes, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	view := body["data"].(map[string]any)
	assert.EqualValues(t, 4, view["step"])
	assert.EqualValues(t, 1, view["progress"])
	assert.Equal(t, "Review & Submit", view["step_title"])

	code, body = send(t, routes, http.MethodPost, base+"/advance", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "UNPROCESSABLE", body["code"])

	code, body = send(t, routes, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusCreated, code)
	result := body["data"].(map[string]any)
	assert.Equal(t, onboarding.SubmittedMessage, result["message"])
	assert.Equal(t, "pending", result["submission"].(map[string]any)["status"])
	assert.Equal(t, true, result["wizard"].(map[string]any)["submitted"])

	code, body = send(t, routes, http.MethodPatch, base, `{"name":"Late Edit"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestHandler_Errors(t *testing.T) {
	routes := onboarding.NewHandler(newService(&mockSink{}, 0)).Routes()

	code, body := send(t, routes, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body["code"])

	code, body = send(t, routes, http.MethodPost, "/", "")
	require.Equal(t, http.StatusCreated, code)
	draftID := body["data"].(map[string]any)["id"].(string)

	code, body = send(t, routes, http.MethodPatch, "/"+draftID, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	code, _ = send(t, routes, http.MethodDelete, "/"+draftID, "")
	assert.Equal(t, http.StatusNoContent, code)
}
