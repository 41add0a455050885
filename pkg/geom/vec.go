// pkg/geom/vec.go
package geom

import "math"

// Vec2 — точка или вектор на плоскости земли (x, z).
type Vec2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

func V(x, z float64) Vec2 { return Vec2{X: x, Z: z} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Z + o.Z} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Z - o.Z} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Z * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Z*o.Z }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Z) }

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Z / l}
}

// ClampLen shortens v to max if it is longer.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Lerp moves v toward o by fraction t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Z + (o.Z-v.Z)*t}
}

// FromAngle returns a point at the given polar coordinates around the origin.
func FromAngle(angle, radius float64) Vec2 {
	return Vec2{math.Cos(angle) * radius, math.Sin(angle) * radius}
}
