package physics

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

var (
	triangle = []Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	// U shape opening upwards; the notch spans x in (3, 7) below y = 5.
	notch = []Vector2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 5}, {X: 7, Y: 5}, {X: 7, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
)

func point(x, y float64) *Body         { return newTestBody(x, y, 0, 0, Point{}) }
func circle(x, y, d float64) *Body     { return newTestBody(x, y, d, d, Ellipse{}) }
func rect(x, y, w, h float64) *Body    { return newTestBody(x, y, w, h, Rectangle{}) }
func ellipse(x, y, w, h float64) *Body { return newTestBody(x, y, w, h, Ellipse{}) }
func polygon(verts ...Vector2) *Body   { return newTestBody(0, 0, 0, 0, Polygon{Vertices: verts}) }

func square(x, y, size float64) []Vector2 {
	return []Vector2{{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size}}
}

func TestNarrowPhaseIsTotal(t *testing.T) {
	for ka := ShapeKind(0); ka < kindCount; ka++ {
		for kb := ShapeKind(0); kb < kindCount; kb++ {
			if narrowPhase[ka][kb] == nil {
				t.Errorf("no narrow-phase test for %s x %s", ka, kb)
			}
		}
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Body
		expected bool
	}{
		{"point_point_same_cell", point(3.2, 4.9), point(3.8, 4.1), true},
		{"point_point_neighbour", point(3.9, 4), point(4.2, 4), false},

		{"ellipse_ellipse_overlap", circle(0, 0, 10), circle(9, 0, 10), true},
		{"ellipse_ellipse_diagonal_gap", circle(0, 0, 10), circle(8, 8, 10), false},

		{"rect_rect_overlap", rect(0, 0, 10, 10), rect(5, 5, 10, 10), true},
		{"rect_rect_apart", rect(0, 0, 10, 10), rect(20, 0, 10, 10), false},

		{"rect_ellipse_side", rect(0, 0, 10, 10), circle(12, 5, 6), true},
		{"rect_ellipse_corner_gap", rect(0, 0, 10, 10), circle(13, 13, 6), false},
		{"ellipse_rect_side", circle(12, 5, 6), rect(0, 0, 10, 10), true},

		{"point_ellipse_inside", point(8, 0), ellipse(0, 0, 20, 10), true},
		{"point_ellipse_outside", point(7, 4), ellipse(0, 0, 20, 10), false},
		{"ellipse_point_inside", ellipse(0, 0, 20, 10), point(0, 4.9), true},

		{"point_rect_inside", point(5, 5), rect(0, 0, 10, 10), true},
		{"point_rect_just_outside", point(10.4, 5), rect(0, 0, 10, 10), false},
		{"rect_point_inside", rect(0, 0, 10, 10), point(5, 5), true},

		{"point_polygon_inside", point(1, 1), polygon(notch...), true},
		{"point_polygon_notch", point(5, 2), polygon(notch...), false},
		{"polygon_point_notch", polygon(notch...), point(5, 2), false},

		{"ellipse_convex_edge", circle(12, 5, 6), polygon(square(0, 0, 10)...), true},
		{"ellipse_convex_inside", circle(5, 5, 2), polygon(square(0, 0, 10)...), true},
		{"ellipse_concave_corner_gap", circle(13, 13, 6), polygon(notch...), false},
		{"ellipse_concave_notch", circle(5, 2, 2), polygon(notch...), false},
		{"concave_ellipse_edge", polygon(notch...), circle(5, 6, 3), true},

		{"rect_convex_inside", rect(2, 2, 2, 2), polygon(triangle...), true},
		{"rect_convex_gap", rect(6, 6, 4, 4), polygon(triangle...), false},
		{"convex_rect_crossing", polygon(triangle...), rect(4, 4, 10, 10), true},
		{"rect_concave_notch", rect(4, 1, 2, 2), polygon(notch...), false},
		{"rect_concave_crossing", rect(2, 1, 2, 2), polygon(notch...), true},

		{"convex_convex_crossing", polygon(triangle...), polygon(Vector2{X: 2, Y: 2}, Vector2{X: 12, Y: 2}, Vector2{X: 2, Y: 12}), true},
		{"convex_convex_gap", polygon(triangle...), polygon(Vector2{X: 10, Y: 10}, Vector2{X: 10, Y: 4}, Vector2{X: 4, Y: 10}), false},
		{"convex_convex_contained", polygon(triangle...), polygon(Vector2{X: 1, Y: 1}, Vector2{X: 3, Y: 1}, Vector2{X: 1, Y: 3}), true},
		{"concave_convex_notch", polygon(notch...), polygon(square(4, 1, 2)...), false},
		{"concave_convex_crossing", polygon(notch...), polygon(square(8, 8, 4)...), true},

		{"convex_convex_diagonal_near_miss", polygon(triangle...), polygon(Vector2{X: 10, Y: 0.01}, Vector2{X: 10, Y: 10}, Vector2{X: 0.01, Y: 10}), false},
		{"convex_convex_shared_edge", polygon(square(0, 0, 10)...), polygon(square(10, 0, 10)...), true},
		{"convex_rect_shared_edge", polygon(square(0, 0, 10)...), rect(10, 0, 10, 10), true},
		{"rect_rect_shared_edge", rect(0, 0, 10, 10), rect(10, 0, 10, 10), true},
		{"concave_rect_shared_edge", polygon(notch...), rect(10, 0, 10, 10), true},
		{"ellipse_convex_corner_gap", circle(13, 13, 6), polygon(square(0, 0, 10)...), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.expected {
				t.Errorf("Collides(%s, %s) = %v, expected %v", tt.a.Kind(), tt.b.Kind(), got, tt.expected)
			}
			if got := Collides(tt.b, tt.a); got != tt.expected {
				t.Errorf("Collides(%s, %s) swapped = %v, expected %v", tt.b.Kind(), tt.a.Kind(), got, tt.expected)
			}
		})
	}
}

func TestBroadPhaseShortCircuit(t *testing.T) {
	calls := 0
	saved := narrowPhase[KindRectangle][KindRectangle]
	t.Cleanup(func() { narrowPhase[KindRectangle][KindRectangle] = saved })
	narrowPhase[KindRectangle][KindRectangle] = func(a, b *Body) bool {
		calls++
		return saved(a, b)
	}

	if Collides(rect(0, 0, 10, 10), rect(50, 50, 10, 10)) {
		t.Error("disjoint boxes reported as colliding")
	}
	if calls != 0 {
		t.Errorf("narrow phase ran %d times for disjoint boxes, expected 0", calls)
	}

	if !Collides(rect(0, 0, 10, 10), rect(5, 5, 10, 10)) {
		t.Error("overlapping boxes reported as not colliding")
	}
	if calls != 1 {
		t.Errorf("narrow phase ran %d times for overlapping boxes, expected 1", calls)
	}
}

func TestUnknownShapeNeverCollides(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(2, 2, 4, 4)
	b.shape = nil
	b.refresh()

	if b.Kind() != KindUnknown {
		t.Fatalf("Kind() = %v, expected KindUnknown", b.Kind())
	}
	if Collides(a, b) || Collides(b, a) {
		t.Error("a body without a shape collided")
	}

	var buf bytes.Buffer
	w := NewWorld(0, 0, 100, 100)
	w.SetLogger(log.New(&buf, "", 0))
	for _, body := range []*Body{a, b} {
		if err := w.AddBody(body); err != nil {
			t.Fatal(err)
		}
	}
	w.Step()
	if buf.Len() != 0 {
		t.Errorf("warning logged with diagnostics off: %q", buf.String())
	}

	w.SetDiagnostics(true)
	w.Step()
	if !strings.Contains(buf.String(), "no collision test") {
		t.Errorf("expected a diagnostic warning, log was %q", buf.String())
	}
}
