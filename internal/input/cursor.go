package input

import "hero-particles/internal/vmath"

// Rect is the interactive surface in screen pixels.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// ToNDC maps a screen point to normalized device coordinates (y up).
// ok is false when the point lies outside the rect or the rect has no area.
func ToNDC(px, py float64, r Rect) (vmath.Vec2, bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return vmath.Vec2{}, false
	}
	x := (px - r.Left) / r.Width
	y := (py - r.Top) / r.Height
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return vmath.Vec2{}, false
	}
	return vmath.Vec2{X: x*2 - 1, Y: -(y*2 - 1)}, true
}

// Tracker holds the current pointer position relative to the surface.
type Tracker struct {
	Rect   Rect
	Camera vmath.Camera

	ndc     vmath.Vec2
	present bool
}

func NewTracker(rect Rect) *Tracker {
	t := &Tracker{}
	t.Resize(rect)
	return t
}

// Resize updates the surface rect and the camera aspect.
func (t *Tracker) Resize(rect Rect) {
	t.Rect = rect
	aspect := 0.0
	if rect.Height > 0 {
		aspect = rect.Width / rect.Height
	}
	t.Camera = vmath.DefaultCamera(aspect)
}

// Move records a pointer sample in screen pixels.
func (t *Tracker) Move(px, py float64) {
	t.ndc, t.present = ToNDC(px, py, t.Rect)
}

// Leave marks the pointer as outside the surface.
func (t *Tracker) Leave() {
	t.present = false
}

func (t *Tracker) NDC() (vmath.Vec2, bool) {
	return t.ndc, t.present
}

// World returns the pointer on the z = 0 plane, or nil when absent.
func (t *Tracker) World() *vmath.Vec3 {
	if !t.present {
		return nil
	}
	p := t.Camera.Unproject(t.ndc)
	return &p
}
