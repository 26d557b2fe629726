package middleware

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestIPLimiterBurstThenRefusal(t *testing.T) {
	limiter := newIPLimiter(rate.Every(15*time.Minute/10), 10, 30*time.Minute)

	for i := 0; i < 10; i++ {
		if !limiter.allow("10.0.0.1") {
			t.Fatalf("attempt %d inside the burst was refused", i+1)
		}
	}
	if limiter.allow("10.0.0.1") {
		t.Error("attempt 11 should have been refused")
	}

	// a different client has its own bucket
	if !limiter.allow("10.0.0.2") {
		t.Error("separate client was refused on its first attempt")
	}
}

func TestIPLimiterEvictsIdleBuckets(t *testing.T) {
	limiter := newIPLimiter(rate.Inf, 1, 10*time.Millisecond)

	limiter.allow("10.0.0.1")
	if len(limiter.entries) != 1 {
		t.Fatalf("expected 1 bucket, have %d", len(limiter.entries))
	}

	time.Sleep(20 * time.Millisecond)
	limiter.allow("10.0.0.2")
	if _, stale := limiter.entries["10.0.0.1"]; stale {
		t.Error("idle bucket was not evicted")
	}
}
