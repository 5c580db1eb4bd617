package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ytareq/portfolio/internal/metrics"
	"golang.org/x/time/rate"
)

// limiterTTL bounds how long idle per-IP limiters are kept
const limiterTTL = time.Hour

// RateLimiter hands out one token bucket per client IP
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	lastCleanup time.Time
	now         func() time.Time
}

// NewRateLimiter allows requestsPerMinute requests per client with the given burst
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:       rate.Limit(float64(requestsPerMinute) / 60),
		burst:       burst,
		limiters:    make(map[string]*rate.Limiter),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// drop every limiter once an hour so the map cannot grow without bound
	if rl.now().Sub(rl.lastCleanup) > limiterTTL {
		rl.limiters = make(map[string]*rate.Limiter)
		rl.lastCleanup = rl.now()
	}

	limiter, ok := rl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Allow reports whether ip may make another request now
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.limiterFor(ip).AllowN(rl.now(), 1)
}

// RateLimit rejects clients that exceed rl with 429 Too Many Requests
func RateLimit(rl *RateLimiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		if m != nil {
			m.RecordRateLimitBlock()
		}
		c.Header("Retry-After", "60")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many requests. Please try again later.",
		})
	}
}
