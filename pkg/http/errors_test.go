package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError_SetsStatusAndBody(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusNotFound, "not_found", "Entry not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
	assert.Equal(t, "Entry not found", resp.Message)
	assert.Empty(t, resp.Details)
}

func TestWriteErrorWithDetails_IncludesDetails(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorWithDetails(w, http.StatusBadRequest, "bad_request", "validation failed", "date: must be YYYY-MM-DD")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "date: must be YYYY-MM-DD", resp.Details)
}

func TestWriteJSON_EncodesPayload(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
}
