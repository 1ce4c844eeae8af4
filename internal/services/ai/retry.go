package ai

import (
	"context"
	"time"
)

// retryWithBackoff runs fn up to maxAttempts times with a linearly growing
// delay between attempts, honoring context cancellation. Non-retryable
// errors abort immediately.
func retryWithBackoff(ctx context.Context, maxAttempts int, delay time.Duration, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * delay):
			}
		}
	}

	return lastErr
}
