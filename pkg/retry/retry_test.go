package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		MaxRetries:    2,
		BackoffFactor: 2,
		InitialDelay:  5 * time.Millisecond,
		MaxDelay:      50 * time.Millisecond,
		Jitter:        time.Millisecond,
	}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	r := NewRetrier(testConfig())

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestDoSucceedsAfterRetry(t *testing.T) {
	r := NewRetrier(testConfig())

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
}

func TestDoReturnsLastErrorWhenBudgetExhausted(t *testing.T) {
	r := NewRetrier(testConfig())

	wantErr := errors.New("permanent")
	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
	if calls != 3 {
		t.Errorf("expected initial attempt plus 2 retries, got %d attempts", calls)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	r := NewRetrier(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	err := r.Do(ctx, func() error {
		cancel()
		return errors.New("keeps failing")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDoWaitsBetweenAttempts(t *testing.T) {
	cfg := testConfig()
	r := NewRetrier(cfg)

	start := time.Now()
	_ = r.Do(context.Background(), func() error { return errors.New("nope") })
	elapsed := time.Since(start)

	// Two waits: InitialDelay and InitialDelay*BackoffFactor, jitter aside.
	min := cfg.InitialDelay + time.Duration(float64(cfg.InitialDelay)*cfg.BackoffFactor)
	if elapsed < min {
		t.Errorf("expected at least %v of backoff, got %v", min, elapsed)
	}
}
