package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)

	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 600*time.Second, cfg.Cache.TTL)

	assert.Equal(t, 15*time.Second, cfg.Carrier.Timeout)
	assert.Equal(t, 5, cfg.Carrier.CircuitBreakerFailureThreshold)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "rate_service", cfg.Database.DatabaseName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CARRIER_WS_URL", "https://amistadpro.correos.go.cr/wsAppCorreos.wsAppCorreos.svc")
	t.Setenv("API_KEYS", "alpha, beta")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("ORIGIN_POSTCODE", "10101")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "https://amistadpro.correos.go.cr/wsAppCorreos.wsAppCorreos.svc", cfg.Carrier.URL)
	assert.Equal(t, map[string]bool{"alpha": true, "beta": true}, cfg.Auth.APIKeys)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "10101", cfg.Methods.OriginPostcode)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "many")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("MONGODB_ENABLED", "si")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 600*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Database.Enabled)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"a", "b"}, parseList("a, b,"))
}
