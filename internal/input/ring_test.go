package input

import (
	"math"
	"testing"
	"time"

	"hero-particles/internal/vmath"

	"github.com/stretchr/testify/assert"
)

func TestRingAngleSmoothsTowardTarget(t *testing.T) {
	start := time.Unix(1000, 0)
	r := NewRingAngle(start)

	r.Update(vmath.Vec2{X: 0, Y: 1}, start.Add(16*time.Millisecond))
	first := r.Angle()
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, math.Pi/2)

	now := start.Add(16 * time.Millisecond)
	for i := 0; i < 200; i++ {
		now = now.Add(16 * time.Millisecond)
		r.Update(vmath.Vec2{X: 0, Y: 1}, now)
	}
	assert.InDelta(t, math.Pi/2, r.Angle(), 1e-6)
}

func TestRingAngleTakesShortestPathAcrossZero(t *testing.T) {
	start := time.Unix(1000, 0)
	r := NewRingAngle(start)
	now := start
	for i := 0; i < 100; i++ {
		now = now.Add(16 * time.Millisecond)
		r.UpdateAngle(0.01, now)
	}
	before := r.Intensity()

	now = now.Add(16 * time.Millisecond)
	r.UpdateAngle(6.27, now)

	// Moving from 0.01 to 6.27 is a small clockwise step across zero.
	a := r.Angle()
	assert.True(t, a < 0.01 || a > 6.2, "angle %v went the long way", a)
	assert.GreaterOrEqual(t, a, 0.0)
	assert.Less(t, a, vmath.TwoPi)
	assert.Less(t, r.Intensity(), before+0.15)
}

func TestRingAngleIntensityRange(t *testing.T) {
	start := time.Unix(1000, 0)
	r := NewRingAngle(start)
	now := start
	for i := 0; i < 300; i++ {
		now = now.Add(16 * time.Millisecond)
		r.UpdateAngle(float64(i)*0.5, now)
		assert.GreaterOrEqual(t, r.Intensity(), 0.0)
		assert.LessOrEqual(t, r.Intensity(), 1.0)
	}
	assert.Greater(t, r.Intensity(), 0.5)
}

func TestRingAngleIdleDecay(t *testing.T) {
	start := time.Unix(1000, 0)
	r := NewRingAngle(start)
	now := start
	for i := 0; i < 60; i++ {
		now = now.Add(16 * time.Millisecond)
		r.UpdateAngle(float64(i)*0.4, now)
	}
	r.Tick(now)
	peak := r.Intensity()
	assert.Greater(t, peak, 0.1)

	// Within the idle window nothing decays.
	r.Tick(now.Add(150 * time.Millisecond))
	assert.Equal(t, peak, r.Intensity())

	r.Tick(now.Add(2 * time.Second))
	assert.Less(t, r.Intensity(), peak)

	r.Tick(now.Add(time.Minute))
	assert.LessOrEqual(t, r.Intensity(), DecayFloor)
	assert.Greater(t, r.Intensity(), DecayFloor*DecayFactor-1e-12)
}
