package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurstThenRefill(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "buckets are per IP")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterSweep(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }
	rl.Allow("10.0.0.1")

	now = now.Add(limiterIdleTTL / 2)
	rl.Allow("10.0.0.2")
	now = now.Add(limiterIdleTTL/2 + time.Second)

	assert.Equal(t, 1, rl.Sweep())
	assert.Equal(t, 0, rl.Sweep())
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	handler := RateLimit(rl)(okHandler(nil))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	handler.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	rotated := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
	req2.RemoteAddr = "192.0.2.7:5556"
	req2.Header.Set("X-Real-Ip", "198.51.100.9")
	handler.ServeHTTP(rotated, req2)
	assert.Equal(t, http.StatusTooManyRequests, rotated.Code, "a spoofed X-Real-Ip must not open a new bucket")

	other := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPost, "/demo/submit", nil)
	req3.RemoteAddr = "198.51.100.9:5555"
	handler.ServeHTTP(other, req3)
	assert.Equal(t, http.StatusOK, other.Code)
}
