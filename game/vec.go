package game

import "math"

// Vec2 is a 2-D vector in normalized arena space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the Euclidean distance between v and o
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Angle returns the heading of v in radians, measured from +X counter-clockwise
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
