package input

import (
	"testing"

	"hero-particles/internal/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNDC(t *testing.T) {
	r := Rect{Left: 100, Top: 50, Width: 200, Height: 100}

	ndc, ok := ToNDC(200, 100, r)
	require.True(t, ok)
	assert.InDelta(t, 0, ndc.X, 1e-12)
	assert.InDelta(t, 0, ndc.Y, 1e-12)

	ndc, ok = ToNDC(100, 50, r)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: -1, Y: 1}, ndc)

	ndc, ok = ToNDC(300, 150, r)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: 1, Y: -1}, ndc)

	_, ok = ToNDC(99, 100, r)
	assert.False(t, ok)
	_, ok = ToNDC(200, 151, r)
	assert.False(t, ok)

	_, ok = ToNDC(0, 0, Rect{Width: 0, Height: 10})
	assert.False(t, ok)
}

func TestTrackerWorld(t *testing.T) {
	tr := NewTracker(Rect{Width: 1280, Height: 720})
	assert.Nil(t, tr.World())

	tr.Move(640, 360)
	w := tr.World()
	require.NotNil(t, w)
	assert.InDelta(t, 0, w.X, 1e-9)
	assert.InDelta(t, 0, w.Y, 1e-9)
	assert.Zero(t, w.Z)

	tr.Move(1280, 0)
	w = tr.World()
	require.NotNil(t, w)
	ndc, _, ok := tr.Camera.Project(*w)
	require.True(t, ok)
	assert.InDelta(t, 1, ndc.X, 1e-9)
	assert.InDelta(t, 1, ndc.Y, 1e-9)

	tr.Move(-5, 10)
	assert.Nil(t, tr.World())

	tr.Move(10, 10)
	tr.Leave()
	assert.Nil(t, tr.World())
}
