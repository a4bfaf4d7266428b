package input

import (
	"context"
	"sync"
	"time"
)

// Sample is one pointer reading in window pixels.
type Sample struct {
	X, Y float64
}

// Coalescer keeps only the newest pointer sample between frames.
type Coalescer struct {
	mu      sync.Mutex
	pending Sample
	has     bool
}

// Push overwrites any sample not yet drained.
func (c *Coalescer) Push(s Sample) {
	c.mu.Lock()
	c.pending = s
	c.has = true
	c.mu.Unlock()
}

// Drain returns the pending sample once.
func (c *Coalescer) Drain() (Sample, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.has {
		return Sample{}, false
	}
	c.has = false
	return c.pending, true
}

// PointerSource reports the pointer position in screen pixels.
type PointerSource interface {
	Position() (int, int, error)
}

// Poll reads src every interval and pushes readings relative to origin until ctx is done.
// Read errors are skipped.
func Poll(ctx context.Context, src PointerSource, interval time.Duration, origin func() (float64, float64), c *Coalescer) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			x, y, err := src.Position()
			if err != nil {
				continue
			}
			ox, oy := origin()
			c.Push(Sample{X: float64(x) - ox, Y: float64(y) - oy})
		}
	}
}
