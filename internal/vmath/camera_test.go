package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraUnprojectCenter(t *testing.T) {
	cam := DefaultCamera(16.0 / 9.0)
	p := cam.Unproject(Vec2{})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)
	assert.Equal(t, 0.0, p.Z)
}

func TestCameraUnprojectTopEdge(t *testing.T) {
	cam := DefaultCamera(1)
	p := cam.Unproject(Vec2{X: 0, Y: 1})
	// half height of the visible plane at distance 2.5 with a 50 degree fov
	assert.InDelta(t, 2.5*math.Tan(25*math.Pi/180), p.Y, 1e-9)
}

func TestCameraProjectInvertsUnproject(t *testing.T) {
	cam := DefaultCamera(1.6)
	for _, ndc := range []Vec2{{0.3, -0.7}, {-1, 1}, {0.99, 0.01}} {
		world := cam.Unproject(ndc)
		back, scale, ok := cam.Project(world)
		require.True(t, ok)
		assert.InDelta(t, ndc.X, back.X, 1e-9)
		assert.InDelta(t, ndc.Y, back.Y, 1e-9)
		assert.InDelta(t, 1/2.5, scale, 1e-12)
	}
}

func TestCameraProjectBehindCamera(t *testing.T) {
	cam := DefaultCamera(1)
	_, _, ok := cam.Project(Vec3{Z: 3})
	assert.False(t, ok)
}

func TestNDCToScreen(t *testing.T) {
	s := NDCToScreen(Vec2{X: -1, Y: 1}, 800, 600)
	assert.Equal(t, Vec2{0, 0}, s)
	s = NDCToScreen(Vec2{X: 1, Y: -1}, 800, 600)
	assert.Equal(t, Vec2{800, 600}, s)
}

func TestShortestAngleWraps(t *testing.T) {
	assert.InDelta(t, -0.0232, ShortestAngle(0.01, 6.27), 1e-3)
	assert.InDelta(t, 0.0232, ShortestAngle(6.27, 0.01), 1e-3)
	assert.InDelta(t, 0.5, ShortestAngle(1, 1.5), 1e-12)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, TwoPi-0.1, WrapAngle(-0.1), 1e-12)
	assert.InDelta(t, 0.1, WrapAngle(TwoPi+0.1), 1e-12)
	assert.Equal(t, 0.0, WrapAngle(TwoPi))
}
