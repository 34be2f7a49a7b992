package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(cfg RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", RateLimiterMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":1234"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterThrottlesPerIP(t *testing.T) {
	r := newLimitedRouter(RateLimiterConfig{RequestsPerSecond: 1, Burst: 1})

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)

	w := hit(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")

	// Another client has its own bucket
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2").Code)
}

func TestRateLimiterSpawnsNoGoroutines(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 50 {
		RateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 1, Burst: 1})
	}

	// Construction must not leave anything running behind
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+1)
}

func TestRateLimiterSweepsStaleVisitors(t *testing.T) {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rps:      1,
		burst:    1,
		ttl:      time.Minute,
		interval: time.Second,
	}

	rl.getVisitor("10.0.0.1")
	require.Len(t, rl.visitors, 1)

	// Age the entry past the TTL and make the next call sweep
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Minute)
	rl.lastSweep = time.Now().Add(-2 * time.Second)

	rl.getVisitor("10.0.0.2")

	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
