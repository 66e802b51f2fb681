package middleware

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock управляемые часы для rate limiter'а
type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(rate int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(rate, window, setupTestLogger())
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("requests within limit are allowed", func(t *testing.T) {
		limiter, _ := newTestLimiter(5, time.Minute)
		defer limiter.Stop()

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("192.168.1.1"), fmt.Sprintf("request %d should be allowed", i+1))
		}
		assert.False(t, limiter.Allow("192.168.1.1"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter, _ := newTestLimiter(1, time.Minute)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("refill after window", func(t *testing.T) {
		limiter, clock := newTestLimiter(2, time.Minute)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("k"))
		assert.True(t, limiter.Allow("k"))
		assert.False(t, limiter.Allow("k"))

		clock.Advance(30 * time.Second)
		assert.False(t, limiter.Allow("k"), "window not elapsed yet")

		clock.Advance(31 * time.Second)
		assert.True(t, limiter.Allow("k"))
	})
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	limiter, clock := newTestLimiter(1, time.Minute)
	defer limiter.Stop()

	limiter.Allow("stale")
	clock.Advance(90 * time.Second)
	limiter.Allow("fresh")
	clock.Advance(60 * time.Second)

	limiter.cleanupOldBuckets()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.NotContains(t, limiter.buckets, "stale")
	assert.Contains(t, limiter.buckets, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestRateLimiter_Middleware(t *testing.T) {
	var buf bytes.Buffer
	limiter, _ := newTestLimiter(2, time.Minute)
	limiter.logger = slog.New(slog.NewTextHandler(&buf, nil))
	defer limiter.Stop()

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/view", nil)
		// разные порты одного клиента попадают в один bucket
		req.RemoteAddr = fmt.Sprintf("192.0.2.1:%d", 40000+i)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
			assert.Contains(t, w.Body.String(), "rate limit exceeded")
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Contains(t, buf.String(), "Rate limit exceeded")
	assert.Contains(t, buf.String(), "ip=192.0.2.1")
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{"X-Forwarded-For single", map[string]string{"X-Forwarded-For": "203.0.113.1"}, "192.0.2.1:1234", "203.0.113.1"},
		{"X-Forwarded-For chain", map[string]string{"X-Forwarded-For": "203.0.113.1, 198.51.100.2"}, "192.0.2.1:1234", "203.0.113.1"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.7"}, "192.0.2.1:1234", "203.0.113.7"},
		{"RemoteAddr with port", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"RemoteAddr IPv6", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"RemoteAddr without port", nil, "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
