package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"taskpulse/pkg/log"
)

const (
	defaultLimiterStoreSize = 1024
	limiterIdleEviction     = 10 * time.Minute
)

// Config tunes the HTTP middleware stack.
type Config struct {
	RateLimitPerMin int // requests per minute per client, 0 disables
	RateLimitBurst  int
}

// Middleware holds shared state for the gin middleware stack.
type Middleware struct {
	l        log.Logger
	perMin   int
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
}

// New creates the middleware stack. Per-client limiters live in an
// expiring LRU so idle clients do not accumulate state forever.
func New(l log.Logger, cfg Config) Middleware {
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = cfg.RateLimitPerMin
	}

	return Middleware{
		l:        l,
		perMin:   cfg.RateLimitPerMin,
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](defaultLimiterStoreSize, nil, limiterIdleEviction),
	}
}
