// Package middleware
package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key, each refilling maxRequests tokens per window
type KeyedRateLimiter struct {
	window      time.Duration
	maxRequests int
	limit       rate.Limit
	visitors    map[string]*visitor
	mu          sync.Mutex
	now         func() time.Time
}

func NewKeyedRateLimiter(window time.Duration, maxRequests int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		window:      window,
		maxRequests: maxRequests,
		limit:       rate.Every(window / time.Duration(maxRequests)),
		visitors:    make(map[string]*visitor),
		now:         time.Now,
	}
}

// Allow 检查是否允许请求
func (l *KeyedRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, exists := l.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.maxRequests)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// StartCleanup drops idle keys every interval until ctx is done
func (l *KeyedRateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.cleanup()
			}
		}
	}()
}

func (l *KeyedRateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	// an idle bucket is full again after one window, dropping it changes nothing
	threshold := l.now().Add(-2 * l.window)
	for key, v := range l.visitors {
		if v.lastSeen.Before(threshold) {
			delete(l.visitors, key)
		}
	}
}

func (l *KeyedRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// RateLimitMiddleware 创建 Echo 限流中间件
func RateLimitMiddleware(limiter *KeyedRateLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(keyFunc(c)) {
				return service.NewErrorResponse(c, &service.ErrRateLimited)
			}
			return next(c)
		}
	}
}

// IPKeyFunc 基于客户端IP生成键
func IPKeyFunc(c echo.Context) string {
	return c.RealIP()
}

// CombinedKeyFunc 组合IP和端点生成键
func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}
