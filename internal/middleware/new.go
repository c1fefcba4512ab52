package middleware

import (
	"routine-planner/pkg/log"
)

// Config tunes the middleware chain.
type Config struct {
	// RateLimitPerMin caps requests per user per minute. Zero disables the
	// limiter.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
