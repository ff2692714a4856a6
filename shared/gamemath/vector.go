package gamemath

import "math"

// Vector2 is a 2D vector. Methods take and return values, so a Vector2 handed
// out by an accessor never aliases internal state.
type Vector2 struct {
	X, Y float64
}

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

// Div divides both components by d. Dividing by zero follows IEEE rules.
func (v Vector2) Div(d float64) Vector2 {
	return Vector2{X: v.X / d, Y: v.Y / d}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v. The zero vector
// stays zero.
func (v Vector2) Normalize() Vector2 {
	m := v.Mag()
	if m == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / m, Y: v.Y / m}
}

// SetMag returns a vector with the direction of v and length m.
func (v Vector2) SetMag(m float64) Vector2 {
	return v.Normalize().Scale(m)
}

// Heading is the angle of v in radians, measured from the +X axis.
func (v Vector2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vector2) Dist(o Vector2) float64 {
	return v.Sub(o).Mag()
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
