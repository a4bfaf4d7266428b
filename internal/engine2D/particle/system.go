package particle

import (
	"math"

	"hero-particles/internal/config"
	"hero-particles/internal/vmath"
)

// NewSimulator creates a simulator holding the given rest cloud.
func NewSimulator(physics Physics, rest []float32) *Simulator {
	s := &Simulator{Physics: physics}
	s.SetRest(rest)
	return s
}

// SetRest replaces the rest cloud and resets live positions and velocities to match it.
// A trailing partial triple is dropped.
func (s *Simulator) SetRest(rest []float32) {
	n := len(rest) / 3

	s.rest = make([]float32, n*3)
	copy(s.rest, rest)
	s.live = make([]float32, n*3)
	copy(s.live, s.rest)
	s.vel = make([]float32, n*2)
	s.restUV = RestUV(s.rest)
}

// Count is the number of glyph points.
func (s *Simulator) Count() int {
	return len(s.rest) / 3
}

// Positions exposes the live buffer. Callers must not retain it across SetRest.
func (s *Simulator) Positions() []float32 { return s.live }

func (s *Simulator) Rest() []float32 { return s.rest }

func (s *Simulator) Velocities() []float32 { return s.vel }

// RestUVs returns the normalized rest coordinates used for gradient coloring.
func (s *Simulator) RestUVs() []float32 { return s.restUV }

// Time is the accumulated simulation time in seconds.
func (s *Simulator) Time() float64 { return s.time }

// CursorVelocity is the smoothed world-space cursor velocity.
func (s *Simulator) CursorVelocity() vmath.Vec2 { return s.cursorVel }

// Substeps returns the substep count for a clamped frame delta.
func Substeps(frameDt float64) int {
	switch {
	case frameDt > 0.024:
		return 3
	case frameDt > 0.014:
		return 2
	}
	return 1
}

// InfluenceSize clamps the cursor influence control, treating NaN and zero as 1.
func InfluenceSize(controls *config.Controls) float64 {
	if controls == nil {
		return 1
	}
	v := controls.CursorInfluenceSize
	if math.IsNaN(v) || v == 0 {
		v = 1
	}
	return vmath.Clamp(v, 1, 4)
}

// Update advances the simulation by dt seconds. cursor is the world-space pointer, nil when
// the pointer is outside the surface. A buffer length mismatch skips the frame.
func (s *Simulator) Update(dt float64, cursor *vmath.Vec3, controls *config.Controls) {
	if len(s.live) != len(s.rest) || len(s.vel) != len(s.rest)/3*2 {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	p := s.Physics
	frameDt := math.Min(dt, p.MaxFrameDt)
	steps := Substeps(frameDt)
	stepDt := frameDt / float64(steps)

	s.trackCursor(cursor, frameDt)

	size := InfluenceSize(controls)
	f := forces{
		physics:  p,
		radius:   p.BaseRadius * size,
		strength: p.RippleStrength * (1 + (size-1)*0.3),
		cursor:   cursor,
		flow:     s.cursorVel,
		time:     s.time,
	}

	for step := 0; step < steps; step++ {
		for i, j := 0, 0; i < len(s.live); i, j = i+3, j+2 {
			px, py := float64(s.live[i]), float64(s.live[i+1])
			vx, vy := float64(s.vel[j]), float64(s.vel[j+1])

			ax, ay := f.accelerate(px, py, float64(s.rest[i]), float64(s.rest[i+1]), vx, vy)

			vx += ax * stepDt
			vy += ay * stepDt
			vx *= p.AirDrag
			vy *= p.AirDrag

			if speedSq := vx*vx + vy*vy; speedSq > p.MaxSpeed*p.MaxSpeed {
				k := p.MaxSpeed / math.Sqrt(speedSq)
				vx *= k
				vy *= k
			}

			s.live[i] = float32(px + vx*stepDt)
			s.live[i+1] = float32(py + vy*stepDt)
			s.live[i+2] = 0
			s.vel[j] = float32(vx)
			s.vel[j+1] = float32(vy)
		}
	}

	s.time += frameDt
}

// trackCursor smooths the cursor velocity from consecutive samples and decays it while absent.
func (s *Simulator) trackCursor(cursor *vmath.Vec3, frameDt float64) {
	if cursor == nil {
		s.hasPrev = false
		s.cursorVel.X *= s.Physics.CursorVelocityDecay
		s.cursorVel.Y *= s.Physics.CursorVelocityDecay
		return
	}

	if s.hasPrev {
		inv := 1 / math.Max(frameDt, 1e-4)
		instX := (cursor.X - s.prevCursor.X) * inv
		instY := (cursor.Y - s.prevCursor.Y) * inv
		s.cursorVel.X = vmath.Lerp(s.cursorVel.X, instX, s.Physics.CursorSmoothing)
		s.cursorVel.Y = vmath.Lerp(s.cursorVel.Y, instY, s.Physics.CursorSmoothing)
	}
	s.prevCursor = *cursor
	s.hasPrev = true
}
