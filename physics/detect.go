package physics

import "github.com/automoto/rigid2d/shared/gamemath"

// narrowFunc is an exact overlap test for one ordered pair of shape kinds.
type narrowFunc func(a, b *Body) bool

// narrowPhase is indexed by the kinds of the two bodies. Every cell is
// filled in init; TestNarrowPhaseIsTotal guards against gaps when a kind is
// added.
var narrowPhase [kindCount][kindCount]narrowFunc

func init() {
	register(KindPoint, KindPoint, pointPoint)
	register(KindEllipse, KindEllipse, ellipseEllipse)
	register(KindRectangle, KindRectangle, rectRect)
	register(KindRectangle, KindEllipse, rectEllipse)
	register(KindPoint, KindEllipse, pointEllipse)
	register(KindPoint, KindRectangle, pointRect)
	register(KindPoint, KindPolygon, pointPolygon)
	register(KindEllipse, KindPolygon, ellipsePolygon)
	register(KindRectangle, KindPolygon, rectPolygon)
	register(KindPolygon, KindPolygon, polygonPolygon)
}

// register installs fn for (ka, kb) and its mirror for (kb, ka).
func register(ka, kb ShapeKind, fn narrowFunc) {
	narrowPhase[ka][kb] = fn
	if ka != kb {
		narrowPhase[kb][ka] = func(a, b *Body) bool { return fn(b, a) }
	}
}

// Collides runs the bounding-box broad phase and, only if that passes, the
// narrow-phase test for the pair's shape kinds. Pairs involving a body
// without a known shape never collide.
func Collides(a, b *Body) bool {
	hit, _ := collide(a, b)
	return hit
}

// collide also reports whether a narrow-phase test exists for the pair.
func collide(a, b *Body) (hit, handled bool) {
	if !a.bounds.Overlaps(b.bounds) {
		return false, true
	}
	ka, kb := kindOf(a.shape), kindOf(b.shape)
	if ka >= kindCount || kb >= kindCount {
		return false, false
	}
	fn := narrowPhase[ka][kb]
	if fn == nil {
		return false, false
	}
	return fn(a, b), true
}

func pointPoint(a, b *Body) bool {
	return gamemath.PointPoint(a.pos, b.pos)
}

// ellipseEllipse treats both ellipses as circles whose diameter is the
// body width.
func ellipseEllipse(a, b *Body) bool {
	return gamemath.CircleCircle(a.pos, a.width, b.pos, b.width)
}

func rectRect(a, b *Body) bool {
	return gamemath.RectRect(a.rect(), b.rect())
}

func rectEllipse(r, e *Body) bool {
	return gamemath.RectCircle(r.rect(), e.pos, e.width)
}

func pointEllipse(p, e *Body) bool {
	return gamemath.PointEllipse(p.pos, e.pos, e.width, e.height)
}

func pointRect(p, r *Body) bool {
	return gamemath.PointRect(p.pos, r.rect())
}

func pointPolygon(p, poly *Body) bool {
	return gamemath.PointPoly(p.pos, poly.abs)
}

func ellipsePolygon(e, poly *Body) bool {
	if poly.convex {
		return convexCircle(poly.abs, e.pos, e.width)
	}
	return gamemath.CirclePoly(e.pos, e.width, poly.abs)
}

func rectPolygon(r, poly *Body) bool {
	if poly.convex {
		return convexRect(poly.abs, r.rect())
	}
	return gamemath.RectPoly(r.rect(), poly.abs)
}

func polygonPolygon(a, b *Body) bool {
	if a.convex && b.convex {
		return convexPolygons(a.abs, b.abs)
	}
	return gamemath.PolyPoly(a.abs, b.abs)
}
