package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (clock *manualClock) Now() time.Time { return clock.now }

func newTestLimiter(window time.Duration, maxRequests int) (*KeyedRateLimiter, *manualClock) {
	clock := &manualClock{now: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := NewKeyedRateLimiter(window, maxRequests)
	limiter.now = clock.Now
	return limiter, clock
}

func TestKeyedRateLimiterAllow(t *testing.T) {
	limiter, clock := newTestLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("a"), "request %d", i)
	}
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "keys have separate buckets")

	clock.now = clock.now.Add(20 * time.Second)
	assert.True(t, limiter.Allow("a"), "one token refills every window/maxRequests")
	assert.False(t, limiter.Allow("a"))
}

func TestKeyedRateLimiterCleanup(t *testing.T) {
	limiter, clock := newTestLimiter(time.Minute, 3)
	limiter.Allow("idle")
	clock.now = clock.now.Add(90 * time.Second)
	limiter.Allow("active")

	limiter.cleanup()
	assert.Equal(t, 2, limiter.size())

	clock.now = clock.now.Add(60 * time.Second)
	limiter.cleanup()
	assert.Equal(t, 1, limiter.size())
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter, _ := newTestLimiter(time.Minute, 1)
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") },
		RateLimitMiddleware(limiter, IPKeyFunc))

	serve := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return rec
	}
	require.Equal(t, http.StatusOK, serve().Code)
	rec := serve()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}
