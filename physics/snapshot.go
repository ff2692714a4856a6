package physics

// BodyState is a read-only copy of what a renderer needs from one body.
type BodyState struct {
	ID       uint64
	Kind     ShapeKind
	Centered bool
	Static   bool
	Solid    bool
	Position Vector2
	Velocity Vector2
	Width    float64
	Height   float64
	Bounds   AABB
	Vertices []Vector2 // absolute; nil unless Kind is KindPolygon
}

// State copies the body's current state.
func (b *Body) State() BodyState {
	s := BodyState{
		ID:       b.id,
		Kind:     b.Kind(),
		Static:   b.static,
		Solid:    b.solid,
		Position: b.pos,
		Velocity: b.vel,
		Width:    b.width,
		Height:   b.height,
		Bounds:   b.bounds,
		Vertices: b.Vertices(),
	}
	if r, ok := b.shape.(Rectangle); ok {
		s.Centered = r.Centered
	}
	return s
}

// Snapshot returns the state of every body in insertion order. Take it
// after Step returns.
func (w *World) Snapshot() []BodyState {
	out := make([]BodyState, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = b.State()
	}
	return out
}
