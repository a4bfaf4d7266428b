package debug

import (
	"hero-particles/internal/engine2D"
	"hero-particles/internal/engine2D/particle"
	"hero-particles/internal/vmath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) getBoundsToggleRect() rl.Rectangle {
	return rl.NewRectangle(
		10,
		float32(d.tabHeight+5),
		float32(d.sidebarWidth-20),
		float32(d.lineHeight),
	)
}

func (d *DebugOverlay) drawBoundsToggle() {
	rect := d.getBoundsToggleRect()

	boxSize := float32(d.fontHeight) * 1.2
	boxX := rect.X
	boxY := rect.Y + (rect.Height-boxSize)/2

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxSize), int32(boxSize), rl.White)
	if d.ShowBounds {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(boxSize-4), int32(boxSize-4), rl.White)
	}

	d.DrawText("Show World Bounds", int32(boxX+boxSize+10), int32(boxY), int32(d.fontHeight), rl.White)
}

func screenPoint(r *engine2D.Renderer, p vmath.Vec3) (rl.Vector2, bool) {
	ndc, _, ok := r.Tracker.Camera.Project(p)
	if !ok {
		return rl.Vector2{}, false
	}
	s := vmath.NDCToScreen(ndc, float64(r.Width), float64(r.Height))
	return rl.NewVector2(float32(s.X), float32(s.Y)), true
}

// drawWorldBounds outlines the rectangle the glyph cloud is sampled into.
func (d *DebugOverlay) drawWorldBounds(r *engine2D.Renderer) {
	tl, ok1 := screenPoint(r, vmath.Vec3{X: -particle.WorldWidth / 2, Y: particle.WorldHeight / 2})
	br, ok2 := screenPoint(r, vmath.Vec3{X: particle.WorldWidth / 2, Y: -particle.WorldHeight / 2})
	if !ok1 || !ok2 {
		return
	}
	rl.DrawRectangleLinesEx(rl.NewRectangle(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y), 1, rl.NewColor(0, 255, 0, 255))

	origin, _ := screenPoint(r, vmath.Vec3{})
	rl.DrawRectangle(int32(origin.X-2), int32(origin.Y-2), 4, 4, rl.Red)
}

// drawInfluenceRing circles the cursor's interaction radius.
func (d *DebugOverlay) drawInfluenceRing(r *engine2D.Renderer) {
	cursor := r.Tracker.World()
	if cursor == nil {
		return
	}
	center, ok := screenPoint(r, *cursor)
	if !ok {
		return
	}
	radius := r.Simulator.Physics.BaseRadius * particle.InfluenceSize(&r.Controls)
	edge, ok := screenPoint(r, vmath.Vec3{X: cursor.X + radius, Y: cursor.Y})
	if !ok {
		return
	}
	rl.DrawCircleLines(int32(center.X), int32(center.Y), edge.X-center.X, rl.NewColor(255, 255, 0, 150))
}
