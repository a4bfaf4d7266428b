package vmath

import "math"

// Camera is a perspective camera on the +Z axis looking at the origin.
// The particle scene lives on the z = 0 plane.
type Camera struct {
	Distance float64 // camera z
	FovY     float64 // vertical field of view in degrees
	Aspect   float64 // width / height
}

func DefaultCamera(aspect float64) Camera {
	if aspect <= 0 {
		aspect = 16.0 / 9.0
	}
	return Camera{Distance: 2.5, FovY: 50, Aspect: aspect}
}

func (c Camera) tanHalfFov() float64 {
	return math.Tan(c.FovY * math.Pi / 360)
}

// Unproject casts a ray through an NDC point and intersects it with the z = 0 plane.
func (c Camera) Unproject(ndc Vec2) Vec3 {
	t := c.tanHalfFov()
	dir := Vec3{X: ndc.X * t * c.Aspect, Y: ndc.Y * t, Z: -1}
	// origin (0,0,Distance) + s*dir hits z=0 at s = Distance
	return Vec3{X: dir.X * c.Distance, Y: dir.Y * c.Distance, Z: 0}
}

// Project maps a world point to NDC. scale is 1/depth, used for perspective point sizes.
// ok is false for points at or behind the camera.
func (c Camera) Project(p Vec3) (ndc Vec2, scale float64, ok bool) {
	depth := c.Distance - p.Z
	if depth <= 1e-6 {
		return Vec2{}, 0, false
	}
	t := c.tanHalfFov()
	ndc.X = p.X / (depth * t * c.Aspect)
	ndc.Y = p.Y / (depth * t)
	return ndc, 1 / depth, true
}

// NDCToScreen converts NDC to pixel coordinates on a width x height surface (y down).
func NDCToScreen(ndc Vec2, width, height float64) Vec2 {
	return Vec2{
		X: (ndc.X + 1) * 0.5 * width,
		Y: (1 - ndc.Y) * 0.5 * height,
	}
}
