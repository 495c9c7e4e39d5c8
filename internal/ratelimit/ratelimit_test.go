package ratelimit

import (
	"testing"
	"time"
)

func TestKeyedRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name     string
		rps      float64
		burst    int
		key      string
		calls    int
		wantPass int
	}{
		{
			name:     "burst allows initial requests",
			rps:      1,
			burst:    3,
			key:      "test",
			calls:    3,
			wantPass: 3,
		},
		{
			name:     "exceeding burst blocks",
			rps:      1,
			burst:    2,
			key:      "test",
			calls:    5,
			wantPass: 2,
		},
		{
			name:     "different keys are independent",
			rps:      1,
			burst:    1,
			key:      "key1",
			calls:    1,
			wantPass: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := New(tt.rps, tt.burst)
			defer rl.Stop()

			passed := 0
			for i := 0; i < tt.calls; i++ {
				if rl.Allow(tt.key) {
					passed++
				}
			}

			if passed != tt.wantPass {
				t.Errorf("Allow() passed %d, want %d", passed, tt.wantPass)
			}
		})
	}
}

func TestKeyedRateLimiter_IndependentKeys(t *testing.T) {
	rl := New(1, 1)
	defer rl.Stop()

	// Exhaust key1
	rl.Allow("key1")
	if rl.Allow("key1") {
		t.Error("key1 should be exhausted")
	}

	// key2 should still work
	if !rl.Allow("key2") {
		t.Error("key2 should be independent and allowed")
	}
}

func TestKeyedRateLimiter_EvictIdle(t *testing.T) {
	rl := NewWithTTL(1, 1, time.Minute)
	defer rl.Stop()

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	rl.Allow("stale")
	clock = clock.Add(45 * time.Second)
	rl.Allow("fresh")

	clock = clock.Add(30 * time.Second)
	rl.evictIdle()

	if got := rl.Len(); got != 1 {
		t.Fatalf("Len() = %d after eviction, want 1", got)
	}

	// An evicted key starts over with a full bucket.
	if !rl.Allow("stale") {
		t.Error("evicted key should be allowed again")
	}
}

func TestKeyedRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := New(1, 1)
	rl.Stop()
	rl.Stop()
	if err := rl.Shutdown(); err != nil {
		t.Errorf("Shutdown() = %v", err)
	}
}
