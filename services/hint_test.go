package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	svc := &HintService{
		maxRetries: 3,
		baseDelay:  time.Millisecond,
		generate: func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "use a hash map", nil
		},
	}

	hint, err := svc.withRetry(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "use a hash map", hint)
	assert.Equal(t, 1, calls)
}

func TestWithRetryRecoversAfterFailures(t *testing.T) {
	calls := 0
	svc := &HintService{
		maxRetries: 3,
		baseDelay:  time.Millisecond,
		generate: func(ctx context.Context, prompt string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("model unavailable")
			}
			return "think about the base case", nil
		},
	}

	hint, err := svc.withRetry(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "think about the base case", hint)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	svc := &HintService{
		maxRetries: 3,
		baseDelay:  time.Millisecond,
		generate: func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "", errors.New("model unavailable")
		},
	}

	_, err := svc.withRetry(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryTreatsEmptyResponseAsFailure(t *testing.T) {
	svc := &HintService{
		maxRetries: 2,
		baseDelay:  time.Millisecond,
		generate: func(ctx context.Context, prompt string) (string, error) {
			return "", nil
		},
	}

	_, err := svc.withRetry(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty model response")
}

func TestWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	svc := &HintService{
		maxRetries: 3,
		baseDelay:  time.Hour,
		generate: func(ctx context.Context, prompt string) (string, error) {
			cancel()
			return "", errors.New("model unavailable")
		},
	}

	_, err := svc.withRetry(ctx, "prompt")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticHintSelection(t *testing.T) {
	svc := &HintService{}
	hints := []byte(`["first nudge", "second nudge", "walkthrough"]`)

	assert.Equal(t, "first nudge", svc.staticHint(hints, 0))
	assert.Equal(t, "first nudge", svc.staticHint(hints, 1))
	assert.Equal(t, "second nudge", svc.staticHint(hints, 2))
	assert.Equal(t, "walkthrough", svc.staticHint(hints, 3))
	assert.Equal(t, "walkthrough", svc.staticHint(hints, 10))
	assert.Equal(t, "", svc.staticHint([]byte(`[]`), 1))
	assert.Equal(t, "", svc.staticHint([]byte(`not json`), 1))
}
