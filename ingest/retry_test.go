package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryFixed_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := RetryFixed(context.Background(), func() error {
		calls++
		return nil
	}, 5, time.Millisecond, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryFixed_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := RetryFixed(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, 5, time.Millisecond, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryFixed_ExhaustsAttempts(t *testing.T) {
	failure := errors.New("persistent")
	calls := 0
	err := RetryFixed(context.Background(), func() error {
		calls++
		return failure
	}, 3, time.Millisecond, nil)

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 3, calls)
}

func TestRetryFixed_NonRetryableReturnsImmediately(t *testing.T) {
	transient := errors.New("transient")
	fatal := errors.New("fatal")

	calls := 0
	err := RetryFixed(context.Background(), func() error {
		calls++
		return fatal
	}, 5, time.Millisecond, func(err error) bool {
		return errors.Is(err, transient)
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls, "non-retryable error must not be retried")
}

func TestRetryFixed_InvalidMaxAttempts(t *testing.T) {
	err := RetryFixed(context.Background(), func() error { return nil }, 0, time.Millisecond, nil)
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestRetryFixed_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := RetryFixed(ctx, func() error {
		calls++
		cancel() // Cancel during the first attempt
		return errors.New("transient")
	}, 5, time.Hour, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "must not sleep an hour after cancellation")
}

func TestRetryFixed_ContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := RetryFixed(ctx, func() error {
		calls++
		return nil
	}, 5, time.Millisecond, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}
