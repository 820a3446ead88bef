package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	policy := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	calls := 0
	attempts, err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	}, nil)

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if attempts != 1 || calls != 1 {
		t.Errorf("expected 1 attempt, got attempts=%d calls=%d", attempts, calls)
	}
}

func TestDoSucceedsAfterRetries(t *testing.T) {
	policy := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	calls := 0
	attempts, err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, nil)

	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected attempts == 3, got %d", attempts)
	}
}

func TestDoExhaustsBudget(t *testing.T) {
	policy := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	calls := 0
	wantErr := errors.New("backend down")
	attempts, err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	}, nil)

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	// Never more than MaxAttempts, never N+1.
	if attempts != 3 || calls != 3 {
		t.Errorf("expected exactly 3 attempts, got attempts=%d calls=%d", attempts, calls)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	policy := Policy{MaxAttempts: 5, Delay: time.Millisecond}

	fatal := errors.New("bad input")
	calls := 0
	attempts, err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	}, func(err error) bool {
		return !errors.Is(err, fatal)
	})

	if !errors.Is(err, fatal) {
		t.Fatalf("expected %v, got %v", fatal, err)
	}
	if attempts != 1 || calls != 1 {
		t.Errorf("expected a single attempt for non-retryable error, got attempts=%d calls=%d", attempts, calls)
	}
}

func TestDoHonorsCancellation(t *testing.T) {
	policy := Policy{MaxAttempts: 10, Delay: 50 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, err := policy.Do(ctx, func(ctx context.Context) error {
			calls++
			return errors.New("transient")
		}, nil)
		if err == nil {
			t.Error("expected error after cancellation")
		}
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retry loop did not stop after cancellation")
	}

	if calls >= 10 {
		t.Errorf("expected cancellation to cut the attempt budget short, got %d calls", calls)
	}
}

func TestDoZeroAttemptsRunsOnce(t *testing.T) {
	policy := Policy{}

	calls := 0
	attempts, _ := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("x")
	}, nil)

	if attempts != 1 || calls != 1 {
		t.Errorf("expected a single attempt, got attempts=%d calls=%d", attempts, calls)
	}
}
