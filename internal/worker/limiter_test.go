package worker

import (
	"context"
	"testing"
)

func TestKeyedLimiter_New(t *testing.T) {
	limiter := NewKeyedLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewKeyedLimiter(10, -1)
	if l2.defaultBurst != 4 {
		t.Errorf("expected default burst 4 for negative input, got %d", l2.defaultBurst)
	}
}

func TestKeyedLimiter_Allow(t *testing.T) {
	// 1 rps, burst 1: second immediate call for the same key is denied.
	limiter := NewKeyedLimiter(1, 1)

	if !limiter.Allow("openai") {
		t.Fatal("first call should be allowed")
	}
	if limiter.Allow("openai") {
		t.Error("second immediate call should be denied (tokens exhausted)")
	}

	// A different key has its own budget.
	if !limiter.Allow("ollama") {
		t.Error("different key must not share the budget")
	}
}

func TestKeyedLimiter_Wait(t *testing.T) {
	limiter := NewKeyedLimiter(100, 1)

	if err := limiter.Wait(context.Background(), "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestKeyedLimiter_SetKeyRate(t *testing.T) {
	limiter := NewKeyedLimiter(1, 1)
	limiter.SetKeyRate("fast", 1000, 10)

	for i := 0; i < 10; i++ {
		if !limiter.Allow("fast") {
			t.Fatalf("call %d for custom-rate key should be allowed", i+1)
		}
	}
}
