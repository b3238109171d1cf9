package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticoship/rate-service/internal/geo"
	"github.com/ticoship/rate-service/internal/rate"
)

func testRouter(cfg RouterConfig) *httptest.Server {
	settings := newFakeSettingsService()
	calculator := rate.NewCalculator(fixedTariff(2500, 0), geo.NewTableResolver())
	handler := NewHandler(calculator, settings)
	settingsHandler := NewSettingsHandler(settings)

	router := NewRouter(handler, settingsHandler, NewHealthHandler(), cfg)
	return httptest.NewServer(router)
}

func TestRouterInfrastructureRoutes(t *testing.T) {
	srv := testRouter(DefaultRouterConfig())
	defer srv.Close()

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestRouterAPIKeyEnforcement(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.APIKeys = map[string]bool{"sekret": true}
	srv := testRouter(cfg)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/settings/pymexpress")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/settings/pymexpress", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "sekret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouterHealthSkipsAPIKey(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.APIKeys = map[string]bool{"sekret": true}
	srv := testRouter(cfg)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
