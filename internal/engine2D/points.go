package engine2D

import (
	"math"

	"hero-particles/internal/config"
	"hero-particles/internal/vmath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ParticleBaseSize = 0.14
	PointScale       = 80.0
	DustPointScale   = 50.0
	DustBrightness   = 0.95

	minPointSize = 0.5
)

func (r *Renderer) project(p vmath.Vec3) (x, y float32, scale float64, ok bool) {
	ndc, scale, ok := r.Tracker.Camera.Project(p)
	if !ok {
		return 0, 0, 0, false
	}
	s := vmath.NDCToScreen(ndc, float64(r.Width), float64(r.Height))
	return float32(s.X), float32(s.Y), scale, true
}

func (r *Renderer) drawDust() {
	shade := uint8(DustBrightness * 255)
	for i, d := range r.Field.Dust {
		x, y, scale, ok := r.project(r.Field.RenderPosition(i))
		if !ok {
			continue
		}
		size := math.Max(d.Size*DustPointScale*scale, minPointSize)
		color := rl.NewColor(shade, shade, shade, uint8(vmath.Clamp(d.Alpha, 0, 1)*255))
		rl.DrawCircleV(rl.NewVector2(x, y), float32(size/2), color)
	}
}

// drawParticles draws every glyph point with the configured shape, colored by its rest UV.
func (r *Renderer) drawParticles() {
	positions := r.Simulator.Positions()
	uvs := r.Simulator.RestUVs()
	t := r.Simulator.Time()
	base := ParticleBaseSize * r.Controls.ParticleSize * PointScale
	shape := r.Controls.ParticleShape

	tint := toRL(r.palette.Tint, 1)
	for i := 0; i+2 < len(positions); i += 3 {
		p := vmath.Vec3{X: float64(positions[i]), Y: float64(positions[i+1]), Z: float64(positions[i+2])}
		x, y, scale, ok := r.project(p)
		if !ok {
			continue
		}
		size := float32(math.Max(base*scale, minPointSize))

		color := tint
		if r.palette.GradientEnabled {
			j := i / 3 * 2
			color = toRL(r.palette.ColorAt(float64(uvs[j]), float64(uvs[j+1]), t), 1)
		}
		drawPoint(shape, x, y, size, color)
	}
}

func drawPoint(shape config.ParticleShape, x, y, size float32, color rl.Color) {
	half := size / 2
	switch shape {
	case config.ShapeSquare:
		rl.DrawRectangleV(rl.NewVector2(x-half, y-half), rl.NewVector2(size, size), color)
	case config.ShapeTriangle:
		rl.DrawTriangle(
			rl.NewVector2(x, y-half),
			rl.NewVector2(x-half, y+half),
			rl.NewVector2(x+half, y+half),
			color,
		)
	default:
		rl.DrawCircleV(rl.NewVector2(x, y), half, color)
	}
}
