package particle

import (
	"math"

	"hero-particles/internal/vmath"
)

// forces is the per-frame force configuration shared by all substeps.
type forces struct {
	physics  Physics
	radius   float64
	strength float64
	cursor   *vmath.Vec3
	flow     vmath.Vec2
	time     float64
}

// accelerate returns the acceleration on one point: the damped spring toward rest, plus the
// cursor ripple, flow drag and swirl inside the interaction radius.
func (f *forces) accelerate(px, py, rx, ry, vx, vy float64) (float64, float64) {
	p := f.physics
	ax := (rx-px)*p.Stiffness - vx*p.Damping
	ay := (ry-py)*p.Stiffness - vy*p.Damping

	if f.cursor == nil {
		return ax, ay
	}

	dx := px - f.cursor.X
	dy := py - f.cursor.Y
	distSq := dx*dx + dy*dy
	if distSq >= f.radius*f.radius {
		return ax, ay
	}

	dist := math.Sqrt(distSq) + 1e-4
	nx, ny := dx/dist, dy/dist
	sigma := f.radius * 0.45
	influence := math.Exp(-distSq / math.Max(1e-6, 2*sigma*sigma))
	phase := dist*p.RippleFrequency - f.time*p.RippleSpeed
	ripple := math.Sin(phase) * f.strength * influence

	ax += nx * ripple
	ay += ny * ripple
	ax += f.flow.X * p.FlowStrength * influence
	ay += f.flow.Y * p.FlowStrength * influence
	ax += -ny * p.SwirlStrength * ripple
	ay += nx * p.SwirlStrength * ripple

	return ax, ay
}
