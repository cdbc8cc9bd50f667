package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter rate-limits login attempts per key (client IP) to slow
// credential brute forcing. It is safe for concurrent use; stale entries
// are cleaned up in the background.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter creates a limiter allowing the given number of attempts
// per window, with the full window available as a burst.
func NewLoginLimiter(attempts int, window time.Duration) *LoginLimiter {
	l := &LoginLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(window / time.Duration(attempts)),
		burst:    attempts,
	}
	go l.cleanup()
	return l
}

// Allow reports whether the given key may attempt a login. Each call
// consumes one token.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

// cleanup runs periodically and removes keys that haven't been seen in 10 minutes.
func (l *LoginLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, e := range l.limiters {
			if e.lastSeen.Before(cutoff) {
				delete(l.limiters, key)
			}
		}
		l.mu.Unlock()
	}
}
