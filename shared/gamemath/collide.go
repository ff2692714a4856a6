package gamemath

import "math"

// Narrow-phase predicates. Circles and ellipses are described by their centre
// and diameter(s); rectangles by their top-left corner and size; polygons by
// their absolute vertices in order (convex or not).

// PointPoint treats two points as equal when they fall in the same integer
// cell. This is a deliberately coarse, sub-pixel tolerant equality.
func PointPoint(a, b Vector2) bool {
	return math.Floor(a.X) == math.Floor(b.X) && math.Floor(a.Y) == math.Floor(b.Y)
}

func CircleCircle(c1 Vector2, d1 float64, c2 Vector2, d2 float64) bool {
	r := d1/2 + d2/2
	return c1.Sub(c2).MagSq() <= r*r
}

func RectRect(a, b Rect) bool {
	return a.Overlaps(b)
}

// RectCircle clamps the circle centre onto the rectangle and compares the
// distance to that closest point with the radius.
func RectCircle(r Rect, c Vector2, d float64) bool {
	closest := Vector2{
		X: clamp(c.X, r.X, r.Right()),
		Y: clamp(c.Y, r.Y, r.Bottom()),
	}
	return c.Sub(closest).MagSq() <= (d/2)*(d/2)
}

func PointCircle(p, c Vector2, d float64) bool {
	return p.Sub(c).MagSq() <= (d/2)*(d/2)
}

// PointEllipse tests p against the axis-aligned ellipse centred on c with
// diameters w and h.
func PointEllipse(p, c Vector2, w, h float64) bool {
	rx, ry := w/2, h/2
	dx, dy := p.X-c.X, p.Y-c.Y
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx, ny := dx/rx, dy/ry
	return nx*nx+ny*ny <= 1
}

func PointRect(p Vector2, r Rect) bool {
	return r.Contains(p)
}

// PointPoly uses the crossing-number rule, so concave polygons work.
func PointPoly(p Vector2, verts []Vector2) bool {
	inside := false
	n := len(verts)
	for i := 0; i < n; i++ {
		vc := verts[i]
		vn := verts[(i+1)%n]
		if (vc.Y >= p.Y && vn.Y < p.Y) || (vc.Y < p.Y && vn.Y >= p.Y) {
			if p.X < (vn.X-vc.X)*(p.Y-vc.Y)/(vn.Y-vc.Y)+vc.X {
				inside = !inside
			}
		}
	}
	return inside
}

// LineLine reports whether segments a1-a2 and b1-b2 intersect. Parallel
// segments never intersect.
func LineLine(a1, a2, b1, b2 Vector2) bool {
	den := (b2.Y-b1.Y)*(a2.X-a1.X) - (b2.X-b1.X)*(a2.Y-a1.Y)
	if den == 0 {
		return false
	}
	ua := ((b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)) / den
	ub := ((a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)) / den
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

// LineCircle reports whether the segment a-b touches the circle.
func LineCircle(a, b, c Vector2, d float64) bool {
	seg := b.Sub(a)
	lenSq := seg.MagSq()
	if lenSq == 0 {
		return PointCircle(a, c, d)
	}
	t := clamp(c.Sub(a).Dot(seg)/lenSq, 0, 1)
	return PointCircle(a.Add(seg.Scale(t)), c, d)
}

// LineRect reports whether the segment a-b crosses any side of r or lies
// inside it.
func LineRect(a, b Vector2, r Rect) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}
	c := r.Corners()
	for i := range c {
		if LineLine(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

// CirclePoly reports whether the circle touches any polygon edge or sits
// entirely inside the polygon.
func CirclePoly(c Vector2, d float64, verts []Vector2) bool {
	n := len(verts)
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if LineCircle(verts[i], verts[(i+1)%n], c, d) {
			return true
		}
	}
	return PointPoly(c, verts)
}

// RectPoly reports whether the rectangle and polygon overlap, including
// either one fully containing the other.
func RectPoly(r Rect, verts []Vector2) bool {
	n := len(verts)
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if LineRect(verts[i], verts[(i+1)%n], r) {
			return true
		}
	}
	return PointPoly(Vector2{X: r.X, Y: r.Y}, verts)
}

// PolyPoly reports whether two polygons overlap, including containment.
func PolyPoly(p1, p2 []Vector2) bool {
	n1, n2 := len(p1), len(p2)
	if n1 == 0 || n2 == 0 {
		return false
	}
	for i := 0; i < n1; i++ {
		a1, a2 := p1[i], p1[(i+1)%n1]
		for j := 0; j < n2; j++ {
			if LineLine(a1, a2, p2[j], p2[(j+1)%n2]) {
				return true
			}
		}
	}
	return PointPoly(p2[0], p1) || PointPoly(p1[0], p2)
}

// Convex reports whether the polygon turns the same way at every vertex.
// Fewer than three vertices is not a polygon and reports false.
func Convex(verts []Vector2) bool {
	n := len(verts)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := verts[i], verts[(i+1)%n], verts[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
