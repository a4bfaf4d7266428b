package effect

import (
	"math"
	"testing"

	"hero-particles/internal/vmath"

	"github.com/stretchr/testify/assert"
)

func TestAberrationTarget(t *testing.T) {
	idle := AberrationTarget(0.02, 0, 0)
	assert.InDelta(t, 0.005, idle.X, 1e-12)
	assert.InDelta(t, 0, idle.Y, 1e-12)

	active := AberrationTarget(0.02, math.Pi/2, 1)
	assert.InDelta(t, 0, active.X, 1e-12)
	assert.InDelta(t, 0.025, active.Y, 1e-12)

	clamped := AberrationTarget(0.02, 0, 7)
	assert.InDelta(t, 0.025, clamped.X, 1e-12)

	assert.Equal(t, vmath.Vec2{}, AberrationTarget(0, 1, 1))
}

func TestAberrationEasesToTarget(t *testing.T) {
	a := NewAberration(60, 8)
	target := vmath.Vec2{X: 0.01, Y: -0.02}

	first := a.Step(target, 1.0/60)
	assert.Greater(t, first.X, 0.0)
	assert.Less(t, first.X, target.X)

	for i := 0; i < 600; i++ {
		a.Step(target, 1.0/60)
	}
	assert.InDelta(t, target.X, a.Offset().X, 1e-6)
	assert.InDelta(t, target.Y, a.Offset().Y, 1e-6)
}

func TestAberrationFollowsFrameTime(t *testing.T) {
	target := vmath.Vec2{X: 0.01}

	fast := NewAberration(60, 8)
	for i := 0; i < 30; i++ {
		fast.Step(target, 1.0/60)
	}
	slow := NewAberration(60, 8)
	for i := 0; i < 15; i++ {
		slow.Step(target, 1.0/30)
	}
	// Half a second of easing lands at the same place regardless of frame rate.
	assert.InDelta(t, fast.Offset().X, slow.Offset().X, 2e-4)
	assert.Greater(t, slow.Offset().X, 0.009)
}

func TestAberrationFallsBackToDefaultStep(t *testing.T) {
	target := vmath.Vec2{Y: 0.02}
	a := NewAberration(60, 8)
	b := NewAberration(60, 8)
	for i := 0; i < 10; i++ {
		a.Step(target, 0)
		b.Step(target, 1.0/60)
	}
	assert.InDelta(t, b.Offset().Y, a.Offset().Y, 1e-12)

	c := NewAberration(60, 8)
	c.Step(target, math.NaN())
	assert.False(t, math.IsNaN(c.Offset().Y))
}
