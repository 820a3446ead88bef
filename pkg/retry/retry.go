package retry

import (
	"context"
	"time"
)

// Policy describes a bounded retry schedule. The same policy is used for
// synthesis backend calls and network fetches so retry behavior is defined
// in exactly one place.
type Policy struct {
	MaxAttempts int           // Total attempts, including the first
	Delay       time.Duration // Delay before the first retry
	Backoff     time.Duration // Added to the delay after each failed attempt
}

// DefaultPolicy returns the standard schedule: three attempts with a
// constant one second delay between them.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Delay:       1 * time.Second,
	}
}

// RetryableFunc reports whether an error is worth retrying. A nil predicate
// retries every error.
type RetryableFunc func(error) bool

// Do runs op until it succeeds, the attempt budget is exhausted, or the
// context is cancelled. It returns the number of attempts actually made and
// the last error. The attempt count never exceeds MaxAttempts.
func (p Policy) Do(ctx context.Context, op func(context.Context) error, retryable RetryableFunc) (int, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				return attempt - 1, err
			}
			return attempt - 1, lastErr
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return attempt, nil
		}

		if retryable != nil && !retryable(lastErr) {
			return attempt, lastErr
		}
		if attempt == attempts {
			return attempt, lastErr
		}

		delay := p.Delay + time.Duration(attempt-1)*p.Backoff
		if err := sleep(ctx, delay); err != nil {
			return attempt, lastErr
		}
	}
	return attempts, lastErr
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
