package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"desapega-api/pkg/response"
)

// RateLimit applies a per-client token bucket keyed by client IP. Limiters
// live in an LRU so an unbounded set of clients cannot grow memory.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.rateLimit.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	size := m.rateLimit.CacheSize
	if size <= 0 {
		size = 4096
	}
	limiters, err := lru.New[string, *rate.Limiter](size)
	if err != nil {
		panic(err)
	}

	perSecond := rate.Limit(float64(m.rateLimit.PerMinute) / 60.0)
	burst := m.rateLimit.Burst
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
