// Package ratelimit provides the in-memory throttle applied to login attempts.
package ratelimit

import (
	"sync"
	"time"

	"luxe/config"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// SlidingWindow counts events per key over a trailing window. It is
// process-local: with several server instances each keeps its own counts,
// which is accepted for this deployment model.
type SlidingWindow struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewSlidingWindow builds a limiter from configuration, falling back to
// 5 attempts per 15 minutes.
func NewSlidingWindow(cfg *config.Config) *SlidingWindow {
	maxAttempts := defaultMaxAttempts
	window := defaultWindow
	if cfg != nil && cfg.RateLimit != nil {
		if cfg.RateLimit.MaxAttempts > 0 {
			maxAttempts = cfg.RateLimit.MaxAttempts
		}
		if cfg.RateLimit.Window > 0 {
			window = cfg.RateLimit.Window
		}
	}

	return &SlidingWindow{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Allow records an attempt for the key and reports whether it is within the
// limit. Attempts older than the window are discarded as a side effect.
func (sw *SlidingWindow) Allow(key string) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := sw.now()
	cutoff := now.Add(-sw.window)

	kept := sw.attempts[key][:0]
	for _, at := range sw.attempts[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= sw.maxAttempts {
		sw.attempts[key] = kept

		return false
	}

	sw.attempts[key] = append(kept, now)

	return true
}
