package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
)

// RateLimiter counts requests per source address in a fixed window. Counters
// live in an expiring in-memory cache; a counter's TTL is the window, so the
// count resets when the window passes.
type RateLimiter struct {
	limit int
	hits  *gocache.Cache
}

// NewRateLimiter creates a limiter allowing limit requests per window per key.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit: limit,
		hits:  gocache.New(window, 2*window),
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	if err := rl.hits.Add(key, int64(1), gocache.DefaultExpiration); err == nil {
		return rl.limit >= 1
	}
	count, err := rl.hits.IncrementInt64(key, 1)
	if err != nil {
		// Counter expired between Add and Increment; start a fresh window.
		rl.hits.Set(key, int64(1), gocache.DefaultExpiration)
		return rl.limit >= 1
	}
	return count <= int64(rl.limit)
}

// Middleware rejects requests over the limit with a 429 carrying code.
func (rl *RateLimiter) Middleware(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			apierrors.TooManyRequests(c, code, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
