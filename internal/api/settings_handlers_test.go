package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettings_RoundTrip(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/settings/theme", map[string]any{"mode": "dark"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/settings/theme")
	require.Equal(t, http.StatusOK, resp.Code)

	var theme struct {
		Mode string `json:"mode"`
	}
	decodeBody(t, resp.Body.Bytes(), &theme)
	require.Equal(t, "dark", theme.Mode)

	resp = ts.api.Get("/api/v1/settings")
	require.Equal(t, http.StatusOK, resp.Code)

	var all map[string]any
	decodeBody(t, resp.Body.Bytes(), &all)
	require.Contains(t, all, "theme")
}

func TestSettings_GetMissing(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/settings/nope")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr APIError
	decodeBody(t, resp.Body.Bytes(), &apiErr)
	require.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestSettings_ClearAll(t *testing.T) {
	ts := setupTestServer(t)

	require.Equal(t, http.StatusOK, ts.api.Put("/api/v1/settings/theme", map[string]any{"mode": "dark"}).Code)
	require.Equal(t, http.StatusOK, ts.api.Put("/api/v1/settings/layout", map[string]any{"compact": true}).Code)

	require.Equal(t, http.StatusNoContent, ts.api.Delete("/api/v1/settings").Code)

	var all map[string]any
	decodeBody(t, ts.api.Get("/api/v1/settings").Body.Bytes(), &all)
	require.Empty(t, all)
}

func TestSettings_Delete(t *testing.T) {
	ts := setupTestServer(t)

	require.Equal(t, http.StatusOK, ts.api.Put("/api/v1/settings/layout", map[string]any{"compact": true}).Code)
	require.Equal(t, http.StatusNoContent, ts.api.Delete("/api/v1/settings/layout").Code)
	require.Equal(t, http.StatusNotFound, ts.api.Get("/api/v1/settings/layout").Code)
}
