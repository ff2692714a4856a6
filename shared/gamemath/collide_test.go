package gamemath

import (
	"math"
	"testing"
)

var (
	square = []Vector2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	// U shape opening upwards; (5, 2) is in the notch, outside the polygon.
	notch = []Vector2{{0, 0}, {3, 0}, {3, 5}, {7, 5}, {7, 0}, {10, 0}, {10, 10}, {0, 10}}
)

func TestPointPoint(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector2
		expected bool
	}{
		{"same_cell", Vec(3.2, 4.9), Vec(3.8, 4.1), true},
		{"exact", Vec(3, 4), Vec(3, 4), true},
		{"neighbour_cell", Vec(3.9, 4), Vec(4.0, 4), false},
		{"negative_floor", Vec(-0.5, 0), Vec(0.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointPoint(tt.a, tt.b); got != tt.expected {
				t.Errorf("PointPoint(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name     string
		c1       Vector2
		d1       float64
		c2       Vector2
		d2       float64
		expected bool
	}{
		{"overlapping", Vec(0, 0), 10, Vec(8, 0), 10, true},
		{"touching", Vec(0, 0), 10, Vec(10, 0), 10, true},
		{"apart", Vec(0, 0), 10, Vec(11, 0), 10, false},
		{"diagonal", Vec(0, 0), 6, Vec(3, 4), 6, true},
		{"nested", Vec(0, 0), 20, Vec(1, 1), 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleCircle(tt.c1, tt.d1, tt.c2, tt.d2); got != tt.expected {
				t.Errorf("CircleCircle() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectCircle(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name     string
		c        Vector2
		d        float64
		expected bool
	}{
		{"centre_inside", Vec(5, 5), 2, true},
		{"side_overlap", Vec(12, 5), 6, true},
		{"corner_miss", Vec(13, 13), 6, false},
		{"corner_hit", Vec(12, 12), 6, true},
		{"far", Vec(30, 5), 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectCircle(r, tt.c, tt.d); got != tt.expected {
				t.Errorf("RectCircle(%v, %v) = %v, expected %v", tt.c, tt.d, got, tt.expected)
			}
		})
	}
}

func TestPointEllipse(t *testing.T) {
	c := Vec(0, 0)
	tests := []struct {
		name     string
		p        Vector2
		expected bool
	}{
		{"centre", Vec(0, 0), true},
		{"on_major_axis", Vec(10, 0), true},
		{"beyond_minor_axis", Vec(0, 6), false},
		{"inside_off_axis", Vec(6, 3), true},
		{"outside_off_axis", Vec(9, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointEllipse(tt.p, c, 20, 10); got != tt.expected {
				t.Errorf("PointEllipse(%v) = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
	if PointEllipse(Vec(0, 0), c, 0, 10) {
		t.Error("zero-width ellipse should not contain points")
	}
}

func TestPointPoly(t *testing.T) {
	tests := []struct {
		name     string
		p        Vector2
		verts    []Vector2
		expected bool
	}{
		{"inside_square", Vec(5, 5), square, true},
		{"outside_square", Vec(15, 5), square, false},
		{"concave_arm", Vec(1, 2), notch, true},
		{"concave_notch", Vec(5, 2), notch, false},
		{"concave_body", Vec(5, 8), notch, true},
		{"empty", Vec(0, 0), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointPoly(tt.p, tt.verts); got != tt.expected {
				t.Errorf("PointPoly(%v) = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestLineLine(t *testing.T) {
	if !LineLine(Vec(0, 0), Vec(10, 10), Vec(0, 10), Vec(10, 0)) {
		t.Error("crossing diagonals should intersect")
	}
	if LineLine(Vec(0, 0), Vec(10, 0), Vec(0, 5), Vec(10, 5)) {
		t.Error("parallel segments should not intersect")
	}
	if LineLine(Vec(0, 0), Vec(1, 1), Vec(5, 0), Vec(0, 5)) {
		t.Error("segments short of each other should not intersect")
	}
}

func TestCirclePoly(t *testing.T) {
	tests := []struct {
		name     string
		c        Vector2
		d        float64
		expected bool
	}{
		{"crosses_edge", Vec(11, 5), 4, true},
		{"inside", Vec(5, 5), 2, true},
		{"outside", Vec(20, 20), 4, false},
		{"swallows_polygon", Vec(5, 5), 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclePoly(tt.c, tt.d, square); got != tt.expected {
				t.Errorf("CirclePoly(%v, %v) = %v, expected %v", tt.c, tt.d, got, tt.expected)
			}
		})
	}
}

func TestRectPoly(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		verts    []Vector2
		expected bool
	}{
		{"edge_overlap", Rect{X: 8, Y: 8, W: 5, H: 5}, square, true},
		{"rect_inside", Rect{X: 2, Y: 2, W: 2, H: 2}, square, true},
		{"poly_inside", Rect{X: -5, Y: -5, W: 30, H: 30}, square, true},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, square, false},
		{"inside_notch", Rect{X: 4, Y: 1, W: 2, H: 2}, notch, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectPoly(tt.r, tt.verts); got != tt.expected {
				t.Errorf("RectPoly(%v) = %v, expected %v", tt.r, got, tt.expected)
			}
		})
	}
}

func TestPolyPoly(t *testing.T) {
	shifted := func(vs []Vector2, dx, dy float64) []Vector2 {
		out := make([]Vector2, len(vs))
		for i, v := range vs {
			out[i] = v.Add(Vec(dx, dy))
		}
		return out
	}
	tests := []struct {
		name     string
		p1, p2   []Vector2
		expected bool
	}{
		{"overlap", square, shifted(square, 5, 5), true},
		{"apart", square, shifted(square, 20, 0), false},
		{"contained", square, []Vector2{{4, 4}, {6, 4}, {5, 6}}, true},
		{"contains", []Vector2{{4, 4}, {6, 4}, {5, 6}}, square, true},
		{"in_notch", notch, []Vector2{{4, 1}, {6, 1}, {5, 3}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolyPoly(tt.p1, tt.p2); got != tt.expected {
				t.Errorf("PolyPoly() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestConvex(t *testing.T) {
	if !Convex(square) {
		t.Error("square should be convex")
	}
	if Convex(notch) {
		t.Error("notched polygon should not be convex")
	}
	if Convex(square[:2]) {
		t.Error("two vertices are not a polygon")
	}
}

func TestClampCoefficient(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 1},
	}
	for _, tt := range tests {
		if got := ClampCoefficient(tt.in); got != tt.expected {
			t.Errorf("ClampCoefficient(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestFrictionForce(t *testing.T) {
	f := FrictionForce(Vec(3, 4), 0.5, 2)
	if math.Abs(f.X+0.6) > 1e-12 || math.Abs(f.Y+0.8) > 1e-12 {
		t.Errorf("FrictionForce = %v, expected (-0.6, -0.8)", f)
	}
	if got := FrictionForce(Vector2{}, 0.5, 2); !got.IsZero() {
		t.Errorf("FrictionForce at rest = %v, expected zero", got)
	}
}

func TestVectorOps(t *testing.T) {
	v := Vec(3, 4)
	if v.Mag() != 5 {
		t.Errorf("Mag = %v, expected 5", v.Mag())
	}
	if got := v.SetMag(10); got != Vec(6, 8) {
		t.Errorf("SetMag(10) = %v, expected (6, 8)", got)
	}
	if got := v.Div(2); got != Vec(1.5, 2) {
		t.Errorf("Div(2) = %v", got)
	}
	if got := (Vector2{}).Normalize(); !got.IsZero() {
		t.Errorf("zero Normalize = %v", got)
	}
	if got := Vec(0, 1).Heading(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Heading = %v, expected pi/2", got)
	}
	if got := ClampSpeed(Vec(30, 40), 5); got != Vec(3, 4) {
		t.Errorf("ClampSpeed = %v, expected (3, 4)", got)
	}
}

func TestBoundsOf(t *testing.T) {
	got := BoundsOf([]Vector2{{2, 3}, {-1, 7}, {5, 0}})
	want := Rect{X: -1, Y: 0, W: 6, H: 7}
	if got != want {
		t.Errorf("BoundsOf = %v, expected %v", got, want)
	}
}
