package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), "anthropic", "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestTimeoutErrorUnwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := &TimeoutError{Model: "gpt-4.1", Cause: cause}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "gpt-4.1")

	var timeoutErr *TimeoutError
	assert.True(t, errors.As(error(err), &timeoutErr))
}

func TestWithTimeout(t *testing.T) {
	ctx := context.Background()

	bounded, cancel := withTimeout(ctx, Params{Timeout: time.Minute})
	defer cancel()
	deadline, ok := bounded.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, time.Second)

	unbounded, cancel := withTimeout(ctx, Params{})
	defer cancel()
	_, ok = unbounded.Deadline()
	assert.False(t, ok)
}
