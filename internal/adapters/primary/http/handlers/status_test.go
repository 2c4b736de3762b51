package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishing-url-service/internal/adapters/primary/http/dto"
)

func TestStatus_Ready(t *testing.T) {
	r := setupRouter(t, true)

	w := get(r, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Ready)
	assert.Equal(t, "LogisticRegression", resp.Model.Type)
	assert.Equal(t, "CountVectorizer", resp.Vectorizer.Type)
	assert.NotNil(t, resp.Model.LoadedAt)
}

func TestStatus_Degraded(t *testing.T) {
	r := setupRouter(t, false)

	w := get(r, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.False(t, resp.Ready)
	assert.NotEmpty(t, resp.Model.Error)
	assert.NotEmpty(t, resp.Vectorizer.Error)
}

func TestHealthz(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(setupRouter(t, true), "/healthz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(setupRouter(t, false), "/healthz").Code)
}
