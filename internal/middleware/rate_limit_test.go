package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(rl *ShardedRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/quote", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	router := rateLimitedRouter(rl)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quote", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quote", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitHeaders(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()
	router := rateLimitedRouter(rl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quote", nil))

	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitWindowReset(t *testing.T) {
	rl := NewShardedRateLimiter(1, 20*time.Millisecond, 4)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("10.0.0.1")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _ = rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed, "window expiry refills the tokens")
}

func TestRateLimitIsolatesIdentifiers(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("10.0.0.2")
	assert.True(t, allowed, "a busy neighbor must not consume another client's tokens")
}
