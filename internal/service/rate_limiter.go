package service

import (
	"strings"
	"sync"
	"time"
)

// RateLimiter gates notification-form submissions per sender key.
type RateLimiter interface {
	Allow(key string) bool
}

type memoryRateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	buckets map[string]*bucket
}

type bucket struct {
	count int
	reset time.Time
}

// NewRateLimiter returns an in-process limiter: max hits per key per window.
func NewRateLimiter(window time.Duration, max int) RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &memoryRateLimiter{
		window:  window,
		max:     max,
		buckets: make(map[string]*bucket),
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	b, ok := l.buckets[normalizedKey]
	if !ok || now.After(b.reset) {
		l.buckets[normalizedKey] = &bucket{count: 1, reset: now.Add(l.window)}
		return true
	}
	b.count++
	return b.count <= l.max
}
