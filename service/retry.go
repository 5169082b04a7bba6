package service

import (
	"context"
	"time"
)

// RetryOperation repeatedly invokes operation until it succeeds or attempts
// are exhausted, waiting delay between attempts. The delay is constant, no
// backoff growth. On exhaustion the final error is returned. The context is
// honoured between attempts, so an abandoned request does not hold the loop
// for the full ceiling.
func RetryOperation[T any](ctx context.Context, operation func() (T, error), delay time.Duration, attempts int) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt < attempts; attempt++ {
		result, err = operation()
		if err == nil {
			return result, nil
		}

		if attempt == attempts-1 {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return result, ctx.Err()
		}
	}

	return result, err
}
