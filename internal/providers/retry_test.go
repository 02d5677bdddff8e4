package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicySucceedsFirstTry(t *testing.T) {
	calls := 0
	policy := RetryPolicy{Attempts: 3, Delay: time.Millisecond}

	err := policy.Do(context.Background(), "op", func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicyRecoversAfterFailures(t *testing.T) {
	calls := 0
	policy := RetryPolicy{Attempts: 3, Delay: time.Millisecond}

	err := policy.Do(context.Background(), "op", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicyExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("still down")
	policy := RetryPolicy{Attempts: 3, Delay: time.Millisecond}

	err := policy.Do(context.Background(), "op", func() error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestRetryPolicyHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := RetryPolicy{Attempts: 5, Delay: time.Minute}

	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := policy.Do(ctx, "op", func() error {
		calls++
		return errors.New("transient")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicyZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	policy := RetryPolicy{}

	err := policy.Do(context.Background(), "op", func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
