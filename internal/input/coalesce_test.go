package input

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCoalescerKeepsNewest(t *testing.T) {
	var c Coalescer
	_, ok := c.Drain()
	assert.False(t, ok)

	c.Push(Sample{X: 1, Y: 1})
	c.Push(Sample{X: 2, Y: 3})

	s, ok := c.Drain()
	require.True(t, ok)
	assert.Equal(t, Sample{X: 2, Y: 3}, s)

	_, ok = c.Drain()
	assert.False(t, ok)
}

type fakePointer struct {
	calls atomic.Int32
}

func (f *fakePointer) Position() (int, int, error) {
	if f.calls.Add(1)%2 == 0 {
		return 0, 0, errors.New("transient")
	}
	return 110, 220, nil
}

func TestPollPushesRelativeSamples(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakePointer{}
	var c Coalescer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Poll(ctx, src, time.Millisecond, func() (float64, float64) { return 10, 20 }, &c)
		close(done)
	}()

	require.Eventually(t, func() bool { return src.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	<-done

	s, ok := c.Drain()
	require.True(t, ok)
	assert.Equal(t, Sample{X: 100, Y: 200}, s)
}
