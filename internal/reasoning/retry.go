package reasoning

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// retryWithBackoff attempts op, retrying up to maxRetries additional times with
// delays of baseDelay * 2^attempt. After exhaustion it fails with a
// RETRY_EXHAUSTED error wrapping the last underlying failure.
func retryWithBackoff(ctx context.Context, logger *zap.Logger, maxRetries int, baseDelay time.Duration, op func() (string, error)) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < maxRetries {
			delay := baseDelay * (1 << attempt)
			logger.Warn("Attempt failed, retrying",
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
				zap.Error(err))
			if err := sleepContext(ctx, delay); err != nil {
				return "", WrapError(CodeRetryExhausted, "retry aborted by cancellation", err)
			}
		} else {
			logger.Error("All attempts failed",
				zap.Int("attempts", maxRetries+1),
				zap.Error(err))
		}
	}

	return "", WrapError(CodeRetryExhausted,
		fmt.Sprintf("operation failed after %d attempts", maxRetries+1), lastErr)
}

// sleepContext sleeps for d or returns early with the context's error
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
