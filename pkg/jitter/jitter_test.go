package jitter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationBounds(t *testing.T) {
	const d = 100 * time.Millisecond

	for range 100 {
		got := Duration(d, DefaultJitter)
		assert.GreaterOrEqual(t, got, d)
		assert.LessOrEqual(t, got, d+d/2)
	}

	assert.Equal(t, d, Duration(d, 0))
	assert.Equal(t, time.Duration(0), Duration(0, DefaultJitter))
}

func TestBackoffDelay(t *testing.T) {
	b := Backoff{Base: time.Second, Max: 8 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{10, 8 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Delay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestBackoffWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBackoff(time.Hour, time.Hour).Wait(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, Backoff{Base: time.Millisecond}.Wait(context.Background(), 0))
}
