package gamemath

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether the x and y intervals of r and o intersect.
// Touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X &&
		r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Vector2 {
	return [4]Vector2{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// BoundsOf returns the smallest Rect containing every point. An empty slice
// yields the zero Rect.
func BoundsOf(points []Vector2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
