package physics

// Resolve applies the collision response for a pair already known to
// overlap and reports whether any velocity changed.
//
// Non-solid pairs and static-static pairs are left alone. A dynamic body
// hitting a static one reverses and keeps e of its speed, v = -v*e, with
// mass ignored. Two dynamic bodies exchange momentum per axis:
//
//	va' = (ea*mb*(ub-ua) + ma*ua + mb*ub) / (ma+mb)
//	vb' = (eb*ma*(ua-ub) + ma*ua + mb*ub) / (ma+mb)
//
// Each body's new velocity uses its own restitution, so momentum is only
// conserved when ea == eb. Both are computed from the pre-collision
// velocities and written together.
func Resolve(a, b *Body) bool {
	if !a.solid || !b.solid {
		return false
	}
	switch {
	case a.static && b.static:
		return false
	case a.static:
		b.vel = b.vel.Scale(-b.restitution)
		return true
	case b.static:
		a.vel = a.vel.Scale(-a.restitution)
		return true
	}

	ma, mb := a.mass, b.mass
	ua, ub := a.vel, b.vel
	momentum := ua.Scale(ma).Add(ub.Scale(mb))
	total := ma + mb

	va := ub.Sub(ua).Scale(a.restitution * mb).Add(momentum).Div(total)
	vb := ua.Sub(ub).Scale(b.restitution * ma).Add(momentum).Div(total)
	a.vel, b.vel = va, vb
	return true
}
