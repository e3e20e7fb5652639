package closer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFO(t *testing.T) {
	c := NewCloser(0)

	var order []string
	for _, name := range []string{"db", "redis", "http"} {
		c.AddFunc(name, func() { order = append(order, name) })
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "db"}, order)

	require.NoError(t, c.Close(context.Background()))
	assert.Len(t, order, 3)
}

func TestCloseCollectsErrors(t *testing.T) {
	c := NewCloser(0)
	errBoom := errors.New("boom")

	c.Add("db", func(context.Context) error { return errBoom })
	c.Add("redis", func(context.Context) error { return nil })

	err := c.Close(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "db: boom")
}

func TestCloseForcedAfterTimeout(t *testing.T) {
	c := NewCloser(time.Second)

	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	var (
		dbClosed  atomic.Int32
		slowCalls atomic.Int32
	)
	c.Add("db", func(context.Context) error {
		dbClosed.Add(1)
		return nil
	})
	c.Add("slow", func(context.Context) error {
		if slowCalls.Add(1) == 1 {
			<-block
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Equal(t, "shutdown interrupted after 0/2 resources", err.Error())
	assert.Equal(t, int32(1), dbClosed.Load())
	assert.Equal(t, int32(2), slowCalls.Load())
}
