package gamemath

import "math"

// ClampCoefficient keeps a material coefficient in [0, 1]. NaN, infinities
// and values above one become 1; negative values become 0.
func ClampCoefficient(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// FrictionForce returns a retarding force of magnitude mu*normal pointing
// against vel. A body at rest gets no friction.
func FrictionForce(vel Vector2, mu, normal float64) Vector2 {
	if vel.IsZero() {
		return Vector2{}
	}
	return vel.Normalize().Scale(-mu * normal)
}

// ClampSpeed limits the magnitude of v to max.
func ClampSpeed(v Vector2, max float64) Vector2 {
	if v.MagSq() > max*max {
		return v.SetMag(max)
	}
	return v
}
