package service

import (
	"testing"
	"time"
)

func TestMemoryRateLimiter_EnforcesWindow(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 2)

	if !limiter.Allow("a@b.c") || !limiter.Allow("a@b.c") {
		t.Fatalf("first two hits must pass")
	}
	if limiter.Allow("a@b.c") {
		t.Fatalf("third hit inside the window must be blocked")
	}
	// A different key has its own bucket.
	if !limiter.Allow("x@y.z") {
		t.Fatalf("unrelated key must not be blocked")
	}
}

func TestMemoryRateLimiter_WindowResets(t *testing.T) {
	limiter := NewRateLimiter(10*time.Millisecond, 1)

	if !limiter.Allow("a@b.c") {
		t.Fatalf("first hit must pass")
	}
	if limiter.Allow("a@b.c") {
		t.Fatalf("second hit must be blocked")
	}
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("a@b.c") {
		t.Fatalf("hit after window reset must pass")
	}
}

func TestMemoryRateLimiter_NormalizesAndRejectsEmptyKeys(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 1)
	if limiter.Allow("   ") {
		t.Fatalf("blank key must be rejected")
	}
	if !limiter.Allow("  A@B.C ") {
		t.Fatalf("first hit must pass")
	}
	if limiter.Allow("a@b.c") {
		t.Fatalf("case variants must share a bucket")
	}
}
