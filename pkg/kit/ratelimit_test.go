package kit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiter_SlidingWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other keys have their own budget")

	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "old hits fall out of the window")
}

func TestIPRateLimiter_ZeroLimitDisables(t *testing.T) {
	l := NewIPRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("10.0.0.1"))
	}
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	l := NewIPRateLimiter(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, rec.Body.String())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	assert.Equal(t, "192.0.2.10", clientIP(req))

	req.Header.Set("X-Forwarded-For", " 198.51.100.4 ,192.0.2.10")
	assert.Equal(t, "198.51.100.4", clientIP(req))
}
