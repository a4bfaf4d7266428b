package particle

import "hero-particles/internal/vmath"

// Physics holds the tunables of the glyph spring simulation.
type Physics struct {
	Stiffness float64
	Damping   float64
	AirDrag   float64 // per-substep velocity multiplier
	MaxSpeed  float64

	BaseRadius      float64 // interaction radius at influence size 1
	RippleStrength  float64
	RippleFrequency float64
	RippleSpeed     float64
	FlowStrength    float64
	SwirlStrength   float64

	MaxFrameDt          float64
	CursorSmoothing     float64 // EMA factor applied to the instantaneous cursor velocity
	CursorVelocityDecay float64 // per-frame multiplier while the cursor is absent
}

func DefaultPhysics() Physics {
	return Physics{
		Stiffness: 13.5,
		Damping:   3.2,
		AirDrag:   0.988,
		MaxSpeed:  5.8,

		BaseRadius:      0.05,
		RippleStrength:  40,
		RippleFrequency: 85,
		RippleSpeed:     8.5,
		FlowStrength:    0.5,
		SwirlStrength:   0.24,

		MaxFrameDt:          0.05,
		CursorSmoothing:     0.35,
		CursorVelocityDecay: 0.86,
	}
}

// Simulator integrates the live glyph points toward their rest positions.
// Positions are flat x,y,z triples; velocities are flat x,y pairs.
type Simulator struct {
	Physics Physics

	rest   []float32
	live   []float32
	vel    []float32
	restUV []float32

	time float64

	cursorVel  vmath.Vec2
	prevCursor vmath.Vec3
	hasPrev    bool
}

// Dust is one decorative ambient point.
type Dust struct {
	Position vmath.Vec3
	Velocity vmath.Vec2
	Size     float64
	Alpha    float64
}

// Field drifts the ambient dust behind the glyphs.
type Field struct {
	HalfWidth  float64
	HalfHeight float64
	MaxDt      float64

	Dust []Dust
	time float64
}
