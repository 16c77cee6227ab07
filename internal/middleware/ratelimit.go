package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskpulse/pkg/response"
)

// RateLimit throttles per client IP. With a zero configured rate the
// middleware is a no-op, which keeps test setups simple.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.perMin <= 0 {
			c.Next()
			return
		}

		if !m.limiterFor(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(key string) *rate.Limiter {
	if lim, ok := m.limiters.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(float64(m.perMin)/60.0), m.burst)
	m.limiters.Add(key, lim)
	return lim
}
