package middleware

import (
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles sensitive endpoints per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.SlidingWindow
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
func NewRateLimitMiddleware(limiter *ratelimit.SlidingWindow) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit rejects the request when the client IP exhausted its window.
// Rejected requests do not consume an attempt.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Allow(c.RealIP()) {
			return domainerrors.ErrTooManyAttempts
		}

		return next(c)
	}
}
