package particle

import (
	"math"
	"math/rand"
	"time"

	"hero-particles/internal/vmath"
)

// NewField spawns count dust points. A nil rng seeds from the clock.
func NewField(count int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{
		HalfWidth:  DustHalfWidth,
		HalfHeight: DustHalfHeight,
		MaxDt:      DustMaxDt,
		Dust:       make([]Dust, count),
	}
	for i := range f.Dust {
		f.Dust[i] = spawnDust(rng, f.HalfWidth, f.HalfHeight)
	}
	return f
}

// Update drifts every point and wraps it to the opposite edge when it leaves the bounds.
func (f *Field) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	dt = math.Min(dt, f.MaxDt)

	for i := range f.Dust {
		d := &f.Dust[i]
		d.Position.X += d.Velocity.X * dt
		d.Position.Y += d.Velocity.Y * dt

		if d.Position.X > f.HalfWidth {
			d.Position.X = -f.HalfWidth
		}
		if d.Position.X < -f.HalfWidth {
			d.Position.X = f.HalfWidth
		}
		if d.Position.Y > f.HalfHeight {
			d.Position.Y = -f.HalfHeight
		}
		if d.Position.Y < -f.HalfHeight {
			d.Position.Y = f.HalfHeight
		}
	}

	f.time += dt
}

func (f *Field) Time() float64 { return f.time }

// RenderPosition is the drawn position of point i: the simulated position plus a slow wobble.
func (f *Field) RenderPosition(i int) vmath.Vec3 {
	p := f.Dust[i].Position
	return vmath.Vec3{
		X: p.X + math.Sin(f.time*0.05+p.Y*4)*0.015,
		Y: p.Y + math.Cos(f.time*0.04+p.X*3.5)*0.012,
		Z: p.Z,
	}
}
