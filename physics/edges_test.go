package physics

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestEdges(t *testing.T) {
	bounds := AABB{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		name     string
		mode     EdgeMode
		pos, vel Vector2
		expPos   Vector2
		expVel   Vector2
	}{
		{"none_outside", EdgeNone, Vector2{X: -5, Y: 50}, Vector2{X: -3, Y: 1}, Vector2{X: -5, Y: 50}, Vector2{X: -3, Y: 1}},
		{"bounce_left", EdgeBounce, Vector2{X: -5, Y: 50}, Vector2{X: -3, Y: 1}, Vector2{X: 0, Y: 50}, Vector2{X: 3, Y: 1}},
		{"bounce_bottom", EdgeBounce, Vector2{X: 50, Y: 104}, Vector2{X: 1, Y: 4}, Vector2{X: 50, Y: 100}, Vector2{X: 1, Y: -4}},
		{"bounce_corner", EdgeBounce, Vector2{X: 101, Y: -1}, Vector2{X: 2, Y: -2}, Vector2{X: 100, Y: 0}, Vector2{X: -2, Y: 2}},
		{"wrap_right", EdgeWrap, Vector2{X: 105, Y: 50}, Vector2{X: 6, Y: 0}, Vector2{X: 0, Y: 50}, Vector2{X: 6, Y: 0}},
		{"wrap_top", EdgeWrap, Vector2{X: 50, Y: -2}, Vector2{X: 0, Y: -3}, Vector2{X: 50, Y: 100}, Vector2{X: 0, Y: -3}},
		{"hold_corner", EdgeHold, Vector2{X: -5, Y: 120}, Vector2{X: -1, Y: 1}, Vector2{X: 0, Y: 100}, Vector2{X: -1, Y: 1}},
		{"inside", EdgeBounce, Vector2{X: 50, Y: 50}, Vector2{X: 1, Y: 1}, Vector2{X: 50, Y: 50}, Vector2{X: 1, Y: 1}},
		{"on_boundary", EdgeBounce, Vector2{X: 100, Y: 0}, Vector2{X: 1, Y: -1}, Vector2{X: 100, Y: 0}, Vector2{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody(tt.pos.X, tt.pos.Y, 1, 1, Point{})
			b.SetVelocity(tt.vel)
			b.edges(tt.mode, bounds)
			if got := b.Position(); got != tt.expPos {
				t.Errorf("position = %v, expected %v", got, tt.expPos)
			}
			if got := b.Velocity(); got != tt.expVel {
				t.Errorf("velocity = %v, expected %v", got, tt.expVel)
			}
		})
	}
}

func TestEdgesRefreshBounds(t *testing.T) {
	b := newTestBody(-5, 50, 1, 1, Point{})
	b.edges(EdgeHold, AABB{W: 100, H: 100})
	if got, expected := b.Bounds(), pointBox(Vector2{X: 0, Y: 50}); got != expected {
		t.Errorf("Bounds() = %+v, expected %+v", got, expected)
	}
}

func TestEdgesDetached(t *testing.T) {
	b := newTestBody(0, 0, 1, 1, Point{})
	if err := b.Edges(); !errors.Is(err, ErrDetached) {
		t.Errorf("Edges() on detached body error = %v, expected ErrDetached", err)
	}

	w := NewWorld(0, 0, 10, 10)
	w.SetEdgeMode(EdgeWrap)
	if err := w.AddBody(b); err != nil {
		t.Fatal(err)
	}
	b.SetX(11)
	if err := b.Edges(); err != nil {
		t.Fatalf("Edges() error: %v", err)
	}
	if got := b.Position().X; got != 0 {
		t.Errorf("x = %v, expected wrap to 0", got)
	}
}

func TestEdgesUnknownMode(t *testing.T) {
	var buf bytes.Buffer
	w := NewWorld(0, 0, 10, 10)
	w.SetLogger(log.New(&buf, "", 0))
	w.SetEdgeMode(EdgeMode(42))

	b := newTestBody(-5, 20, 1, 1, Point{})
	b.SetVelocity(Vector2{X: -1, Y: 1})
	if err := w.AddBody(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Edges(); err != nil {
		t.Fatalf("Edges() error: %v", err)
	}
	if got := b.Position(); got != (Vector2{X: -5, Y: 20}) {
		t.Errorf("position = %v, expected unchanged", got)
	}
	if !strings.Contains(buf.String(), "unknown edge mode") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestParseEdgeMode(t *testing.T) {
	tests := []struct {
		in       string
		expected EdgeMode
		err      bool
	}{
		{"", EdgeNone, false},
		{"none", EdgeNone, false},
		{"Hold", EdgeHold, false},
		{"WRAP", EdgeWrap, false},
		{" bounce", EdgeBounce, false},
		{"teleport", EdgeNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEdgeMode(tt.in)
			if tt.err {
				if !errors.Is(err, ErrUnknownEdgeMode) {
					t.Errorf("ParseEdgeMode(%q) error = %v, expected ErrUnknownEdgeMode", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("ParseEdgeMode(%q) = %v, %v, expected %v", tt.in, got, err, tt.expected)
			}
		})
	}
}

func TestEdgeModeNext(t *testing.T) {
	m := EdgeNone
	seen := []EdgeMode{m}
	for range 4 {
		m = m.Next()
		seen = append(seen, m)
	}
	expected := []EdgeMode{EdgeNone, EdgeHold, EdgeWrap, EdgeBounce, EdgeNone}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Fatalf("Next sequence = %v, expected %v", seen, expected)
		}
	}
}
