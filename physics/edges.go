package physics

import (
	"fmt"
	"strings"
)

// EdgeMode is the policy applied when a body leaves the world bounds.
type EdgeMode uint8

const (
	EdgeNone EdgeMode = iota
	EdgeHold
	EdgeWrap
	EdgeBounce
)

var edgeModeNames = map[EdgeMode]string{
	EdgeNone:   "none",
	EdgeHold:   "hold",
	EdgeWrap:   "wrap",
	EdgeBounce: "bounce",
}

func (m EdgeMode) String() string {
	if s, ok := edgeModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("EdgeMode(%d)", uint8(m))
}

// ParseEdgeMode maps "none", "hold", "wrap" and "bounce" (any case) to an
// EdgeMode. The empty string is EdgeNone.
func ParseEdgeMode(s string) (EdgeMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EdgeNone, nil
	}
	for m, name := range edgeModeNames {
		if name == s {
			return m, nil
		}
	}
	return EdgeNone, fmt.Errorf("%w: %q", ErrUnknownEdgeMode, s)
}

// Next cycles through the known modes.
func (m EdgeMode) Next() EdgeMode {
	return (m + 1) % EdgeMode(len(edgeModeNames))
}

// Edges applies the owning world's edge mode to b.
func (b *Body) Edges() error {
	if b.world == nil {
		return fmt.Errorf("%w: body %d", ErrDetached, b.id)
	}
	b.edges(b.world.edgeMode, b.world.bounds)
	return nil
}

// edges checks each axis independently against bounds; both may fire in
// the same step.
//
//	mode    below min              above max
//	hold    pos = min              pos = max
//	wrap    pos = max              pos = min
//	bounce  pos = min, vel = -vel  pos = max, vel = -vel
func (b *Body) edges(mode EdgeMode, bounds AABB) {
	switch mode {
	case EdgeNone:
		return
	case EdgeHold, EdgeWrap, EdgeBounce:
	default:
		b.world.warnf("body %d: unknown edge mode %v, ignoring", b.id, mode)
		return
	}

	moved := false
	if x, vx, ok := edgeAxis(mode, b.pos.X, b.vel.X, bounds.X, bounds.Right()); ok {
		b.pos.X, b.vel.X = x, vx
		moved = true
	}
	if y, vy, ok := edgeAxis(mode, b.pos.Y, b.vel.Y, bounds.Y, bounds.Bottom()); ok {
		b.pos.Y, b.vel.Y = y, vy
		moved = true
	}
	if moved {
		b.refresh()
	}
}

func edgeAxis(mode EdgeMode, pos, vel, lo, hi float64) (float64, float64, bool) {
	switch {
	case pos < lo:
		switch mode {
		case EdgeHold:
			return lo, vel, true
		case EdgeWrap:
			return hi, vel, true
		case EdgeBounce:
			return lo, -vel, true
		}
	case pos > hi:
		switch mode {
		case EdgeHold:
			return hi, vel, true
		case EdgeWrap:
			return lo, vel, true
		case EdgeBounce:
			return hi, -vel, true
		}
	}
	return pos, vel, false
}
