package motion

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the length of v - o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector along v, or the zero vector for zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle is an angle in radians.
type Angle = float64

// AngleDiff returns the signed shortest turn from one angle to another, in
// [-π, π).
func AngleDiff(from, to Angle) Angle {
	return WrapValue(to-from, -math.Pi, math.Pi)
}

// WrapValue wraps value into [from, to).
func WrapValue(value, from, to float64) float64 {
	r := to - from
	return value - r*math.Floor((value-from)/r)
}
