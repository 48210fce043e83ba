package api

import (
	"context"
	"sync"

	"profix/internal/config"

	"golang.org/x/time/rate"
)

// routeLimiter paces outgoing calls with one token bucket per route, so a
// tight polling loop on one endpoint cannot starve the others.
type routeLimiter struct {
	limiters sync.Map
	cfg      config.RateLimitConfig
}

func newRouteLimiter(cfg config.RateLimitConfig) *routeLimiter {
	if cfg.RPS <= 0 {
		return nil
	}
	return &routeLimiter{cfg: cfg}
}

func (l *routeLimiter) wait(ctx context.Context, route string) error {
	if l == nil {
		return nil
	}
	return l.getLimiter(route).Wait(ctx)
}

func (l *routeLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}
