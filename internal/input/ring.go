package input

import (
	"math"
	"time"

	"hero-particles/internal/vmath"
)

const (
	AngleDamping  = 12.0
	MaxAngleDt    = 0.1
	IntensityLerp = 0.15

	IdleAfter     = 200 * time.Millisecond
	DecayInterval = 80 * time.Millisecond
	DecayFactor   = 0.92
	DecayFloor    = 0.01
)

// RingAngle smooths the pointer angle around the surface center and derives an
// interaction intensity from how fast that angle moves.
type RingAngle struct {
	angle     float64
	prevAngle float64
	intensity float64

	lastUpdate time.Time
	lastMove   time.Time
	lastTick   time.Time
}

func NewRingAngle(now time.Time) *RingAngle {
	return &RingAngle{lastUpdate: now, lastTick: now}
}

// Angle is the smoothed angle in [0, 2π).
func (r *RingAngle) Angle() float64 { return r.angle }

// Intensity is in [0, 1].
func (r *RingAngle) Intensity() float64 { return r.intensity }

// Update feeds an NDC pointer sample.
func (r *RingAngle) Update(ndc vmath.Vec2, now time.Time) {
	r.UpdateAngle(math.Atan2(ndc.Y, ndc.X), now)
}

// UpdateAngle feeds a raw angle in radians.
func (r *RingAngle) UpdateAngle(raw float64, now time.Time) {
	raw = vmath.WrapAngle(raw)

	dt := math.Min(now.Sub(r.lastUpdate).Seconds(), MaxAngleDt)
	if dt < 0 {
		dt = 0
	}
	r.lastUpdate = now

	factor := 1 - math.Exp(-AngleDamping*dt)
	r.angle = vmath.WrapAngle(r.angle + vmath.ShortestAngle(r.angle, raw)*factor)

	if dt == 0 {
		dt = 0.001
	}
	angVel := math.Abs(vmath.ShortestAngle(r.prevAngle, r.angle)) / dt
	r.prevAngle = r.angle

	target := math.Min(1, angVel*2)
	r.intensity = math.Max(0, r.intensity+(target-r.intensity)*IntensityLerp)

	r.lastMove = now
}

// Tick runs the idle decay for every 80 ms interval elapsed since the previous tick.
func (r *RingAngle) Tick(now time.Time) {
	ticks := int(now.Sub(r.lastTick) / DecayInterval)
	if ticks <= 0 {
		return
	}
	for k := 1; k <= ticks && r.intensity > DecayFloor; k++ {
		at := r.lastTick.Add(time.Duration(k) * DecayInterval)
		if at.Sub(r.lastMove) > IdleAfter {
			r.intensity *= DecayFactor
		}
	}
	r.lastTick = r.lastTick.Add(time.Duration(ticks) * DecayInterval)
}
