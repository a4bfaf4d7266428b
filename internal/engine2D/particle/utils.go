package particle

import (
	"math"

	"hero-particles/internal/vmath"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	WorldWidth  = 2.8
	WorldHeight = 1.1
)

// RestUV maps rest positions to [0,1]² pairs across the world rectangle.
func RestUV(rest []float32) []float32 {
	n := len(rest) / 3
	uv := make([]float32, n*2)
	for i := 0; i < n; i++ {
		uv[i*2] = float32(vmath.Clamp(float64(rest[i*3])/WorldWidth+0.5, 0, 1))
		uv[i*2+1] = float32(vmath.Clamp(float64(rest[i*3+1])/WorldHeight+0.5, 0, 1))
	}
	return uv
}

// GradientMix returns the blend factor between the two gradient stops for a point at (u, v)
// at time t. The gradient slowly rotates and ripples across the text.
func GradientMix(u, v, t float64) float64 {
	theta := t * 0.045
	c, s := math.Cos(theta), math.Sin(theta)
	cu, cv := u-0.5, v-0.5
	ru := c*cu + s*cv + 0.5
	rv := -s*cu + c*cv + 0.5

	wave := math.Sin(rv*math.Pi+t*0.22) * 0.035
	phase := (ru + wave + t*0.03) * vmath.TwoPi
	return vmath.Smoothstep(0.08, 0.92, 0.5+0.5*math.Sin(phase))
}

// Palette is the resolved particle coloring.
type Palette struct {
	Tint            colorful.Color
	GradientStart   colorful.Color
	GradientEnd     colorful.Color
	GradientEnabled bool
}

// ColorAt returns the particle color for rest UV (u, v) at time t.
func (p Palette) ColorAt(u, v, t float64) colorful.Color {
	if !p.GradientEnabled {
		return p.Tint
	}
	g := GradientMix(u, v, t)
	grad := colorful.Color{
		R: vmath.Lerp(p.GradientStart.R, p.GradientEnd.R, g),
		G: vmath.Lerp(p.GradientStart.G, p.GradientEnd.G, g),
		B: vmath.Lerp(p.GradientStart.B, p.GradientEnd.B, g),
	}
	return colorful.Color{
		R: grad.R * p.Tint.R,
		G: grad.G * p.Tint.G,
		B: grad.B * p.Tint.B,
	}
}
