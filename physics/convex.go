package physics

import "github.com/solarlune/resolv"

// Convex shapes are tested with the separating axis theorem on resolv
// polygons: two convex shapes overlap unless their projections on some edge
// normal are disjoint. Touching projections count as overlap, matching the
// inclusive line tests used for concave polygons.

func resolvPolygon(verts []Vector2) *resolv.ConvexPolygon {
	pts := make([]float64, 0, len(verts)*2)
	for _, v := range verts {
		pts = append(pts, v.X, v.Y)
	}
	return resolv.NewConvexPolygon(0, 0, pts...)
}

// separated reports whether the projections of a and b on any of the axes
// are disjoint.
func separated(a, b *resolv.ConvexPolygon, axes []Vector2) bool {
	for _, axis := range axes {
		if a.Project([]float64{axis.X, axis.Y}).Overlap(b.Project([]float64{axis.X, axis.Y})) < 0 {
			return true
		}
	}
	return false
}

// edgeNormals returns the polygon's edge normals, skipping repeated
// vertices.
func edgeNormals(p *resolv.ConvexPolygon) []Vector2 {
	var axes []Vector2
	for _, n := range p.SATAxes() {
		axis := Vector2{X: n[0], Y: n[1]}
		if !axis.IsZero() {
			axes = append(axes, axis)
		}
	}
	return axes
}

func convexOverlap(a, b *resolv.ConvexPolygon) bool {
	return !separated(a, b, edgeNormals(a)) && !separated(a, b, edgeNormals(b))
}

func convexPolygons(a, b []Vector2) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	return convexOverlap(resolvPolygon(a), resolvPolygon(b))
}

func convexRect(verts []Vector2, r AABB) bool {
	if len(verts) < 3 {
		return false
	}
	return convexOverlap(resolvPolygon(verts), resolv.NewRectangle(r.X, r.Y, r.W, r.H))
}

// convexCircle takes the circle's diameter, like gamemath.CirclePoly. Besides
// the edge normals, the axis from the nearest vertex to the centre can
// separate a circle from a polygon.
func convexCircle(verts []Vector2, c Vector2, d float64) bool {
	if len(verts) < 3 {
		return false
	}
	poly := resolvPolygon(verts)
	nearest := verts[0]
	for _, v := range verts[1:] {
		if v.Dist(c) < nearest.Dist(c) {
			nearest = v
		}
	}

	axes := edgeNormals(poly)
	if toCentre := c.Sub(nearest); !toCentre.IsZero() {
		axes = append(axes, toCentre)
	}
	r := d / 2
	for _, axis := range axes {
		unit := axis.Normalize()
		centre := c.Dot(unit)
		proj := poly.Project([]float64{unit.X, unit.Y})
		if min(proj.Max, centre+r)-max(proj.Min, centre-r) < 0 {
			return false
		}
	}
	return true
}
