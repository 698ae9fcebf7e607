package reasoning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := retryWithBackoff(context.Background(), zap.NewNop(), 3, time.Millisecond, func() (string, error) {
		calls++
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	result, err := retryWithBackoff(context.Background(), zap.NewNop(), 3, time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "recovered", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustionWrapsLastError(t *testing.T) {
	lastErr := errors.New("still broken")
	calls := 0
	_, err := retryWithBackoff(context.Background(), zap.NewNop(), 2, time.Millisecond, func() (string, error) {
		calls++
		return "", lastErr
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls, "maxRetries=2 means three attempts total")

	var dispatchErr *Error
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, CodeRetryExhausted, dispatchErr.Code)
	assert.ErrorIs(t, err, lastErr)
}

func TestRetryDelaysDoubleEachAttempt(t *testing.T) {
	base := 20 * time.Millisecond
	calls := 0
	start := time.Now()

	_, err := retryWithBackoff(context.Background(), zap.NewNop(), 3, base, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	// two failed attempts sleep base and 2*base before the third succeeds
	assert.GreaterOrEqual(t, elapsed, 3*base)
}

func TestRetryCancellationDuringBackoffSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := retryWithBackoff(ctx, zap.NewNop(), 3, 10*time.Second, func() (string, error) {
		return "", errors.New("always fails")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, time.Second, "cancellation must interrupt the backoff sleep")

	var dispatchErr *Error
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, CodeRetryExhausted, dispatchErr.Code)
	assert.ErrorIs(t, err, context.Canceled)
}
