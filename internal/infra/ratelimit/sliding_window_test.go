package ratelimit

import (
	"testing"
	"time"

	"luxe/config"

	"github.com/stretchr/testify/assert"
)

func newTestWindow(maxAttempts int, window time.Duration) (*SlidingWindow, *time.Time) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{
		MaxAttempts: maxAttempts,
		Window:      window,
	}}

	sw := NewSlidingWindow(cfg)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sw.now = func() time.Time { return current }

	return sw, &current
}

func TestSlidingWindow_AdmitsUpToLimit(t *testing.T) {
	sw, _ := newTestWindow(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		assert.True(t, sw.Allow("10.0.0.1"), "attempt %d should pass", i+1)
	}
	assert.False(t, sw.Allow("10.0.0.1"), "sixth attempt should be blocked")
}

func TestSlidingWindow_KeysAreIndependent(t *testing.T) {
	sw, _ := newTestWindow(1, 15*time.Minute)

	assert.True(t, sw.Allow("10.0.0.1"))
	assert.False(t, sw.Allow("10.0.0.1"))
	assert.True(t, sw.Allow("10.0.0.2"))
}

func TestSlidingWindow_ExpiredAttemptsAreDiscarded(t *testing.T) {
	sw, current := newTestWindow(2, 15*time.Minute)

	assert.True(t, sw.Allow("10.0.0.1"))
	assert.True(t, sw.Allow("10.0.0.1"))
	assert.False(t, sw.Allow("10.0.0.1"))

	*current = current.Add(16 * time.Minute)
	assert.True(t, sw.Allow("10.0.0.1"), "window has passed, attempts reset")
}
