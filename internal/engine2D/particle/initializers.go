package particle

import (
	"math/rand"

	"hero-particles/internal/vmath"
)

const (
	DustCount      = 320
	DustHalfWidth  = 2.2
	DustHalfHeight = 1.35
	DustMaxDt      = 0.033
)

// spawnDust draws one dust point from the initializer ranges.
func spawnDust(rng *rand.Rand, halfW, halfH float64) Dust {
	return Dust{
		Position: vmath.Vec3{
			X: (rng.Float64()*2 - 1) * halfW,
			Y: (rng.Float64()*2 - 1) * halfH,
			Z: -0.85 - rng.Float64()*0.6,
		},
		Size:  vmath.Lerp(0.08, 0.2, rng.Float64()),
		Alpha: vmath.Lerp(0.025, 0.085, rng.Float64()),
		Velocity: vmath.Vec2{
			X: vmath.Lerp(-0.018, 0.018, rng.Float64()),
			Y: vmath.Lerp(-0.01, 0.01, rng.Float64()),
		},
	}
}
