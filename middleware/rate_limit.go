package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	CleanupInterval   time.Duration
	TTL               time.Duration
}

// rateLimiter keeps one token bucket per client IP. Stale entries are
// swept inline on the request path, so an instance owns no goroutine
// and gets collected together with the router holding it
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       int
	burst     int
	ttl       time.Duration
	interval  time.Duration
	lastSweep time.Time
}

func (r *rateLimiter) getVisitor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.lastSweep) > r.interval {
		for k, v := range r.visitors {
			if now.Sub(v.lastSeen) > r.ttl {
				delete(r.visitors, k)
			}
		}
		r.lastSweep = now
	}

	v, exists := r.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(r.rps), r.burst)
		r.visitors[ip] = &visitor{limiter, now}
		return limiter
	}

	v.lastSeen = now
	return v.limiter
}

// RateLimiterMiddleware throttles by client IP. Mounted on the auth
// group, it's also the only brake on guessing the short confirmation
// tokens
func RateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	if config.CleanupInterval == 0 {
		config.CleanupInterval = time.Minute
	}
	if config.TTL == 0 {
		config.TTL = 3 * time.Minute
	}

	rl := &rateLimiter{
		visitors:  make(map[string]*visitor),
		rps:       config.RequestsPerSecond,
		burst:     config.Burst,
		ttl:       config.TTL,
		interval:  config.CleanupInterval,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if !rl.getVisitor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
