package vmath

import "math"

const TwoPi = math.Pi * 2

// Vec2 is a float64 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 is a float64 3D vector
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep matches the GLSL builtin
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// WrapAngle maps any angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// ShortestAngle returns the signed delta from 'from' to 'to' in [-π, π]
func ShortestAngle(from, to float64) float64 {
	delta := math.Mod(to-from, TwoPi)
	if delta > math.Pi {
		delta -= TwoPi
	} else if delta < -math.Pi {
		delta += TwoPi
	}
	return delta
}
