package physics

import (
	"fmt"
	"log"
	"os"
	"slices"
)

// CollisionListener is called after a pair has been resolved.
type CollisionListener func(a, b *Body)

// World owns a set of bodies and advances them one fixed step at a time.
// It is not safe for concurrent use; run each World from one goroutine.
type World struct {
	bounds AABB

	gravity    Vector2
	hasGravity bool

	edgeMode    EdgeMode
	collisions  bool
	diagnostics bool
	debug       bool

	bodies []*Body
	ids    *IDSource
	logger *log.Logger

	listeners []CollisionListener
	steps     uint64

	// processed is reused across steps.
	processed map[[2]int]struct{}
}

// NewWorld returns an empty world covering the given rectangle, with
// collisions on, gravity off and no edge policy.
func NewWorld(x, y, width, height float64) *World {
	return &World{
		bounds:     AABB{X: x, Y: y, W: width, H: height},
		collisions: true,
		ids:        defaultIDs,
		logger:     log.New(os.Stderr, "[physics] ", log.LstdFlags),
		processed:  make(map[[2]int]struct{}),
	}
}

func (w *World) Bounds() AABB { return w.bounds }

// SetGravity enables gravity. It is applied to every body each step as the
// force g*mass, so the resulting acceleration is g for any mass.
func (w *World) SetGravity(g Vector2) {
	w.gravity = g
	w.hasGravity = true
}

func (w *World) DisableGravity() {
	w.gravity = Vector2{}
	w.hasGravity = false
}

// Gravity returns the gravity vector and whether gravity is enabled.
func (w *World) Gravity() (Vector2, bool) { return w.gravity, w.hasGravity }

func (w *World) EdgeMode() EdgeMode     { return w.edgeMode }
func (w *World) SetEdgeMode(m EdgeMode) { w.edgeMode = m }
func (w *World) Collisions() bool       { return w.collisions }
func (w *World) SetCollisions(on bool)  { w.collisions = on }
func (w *World) Diagnostics() bool      { return w.diagnostics }
func (w *World) SetDiagnostics(on bool) { w.diagnostics = on }

// Debug is the overlay flag read by renderers; the world itself ignores it.
func (w *World) Debug() bool      { return w.debug }
func (w *World) SetDebug(on bool) { w.debug = on }

func (w *World) IDs() *IDSource      { return w.ids }
func (w *World) Logger() *log.Logger { return w.logger }
func (w *World) StepCount() uint64   { return w.steps }
func (w *World) Len() int            { return len(w.bodies) }

// OnCollision registers fn to run after each resolved pair, in the order
// listeners were added.
func (w *World) OnCollision(fn CollisionListener) {
	if fn != nil {
		w.listeners = append(w.listeners, fn)
	}
}

// SetIDSource replaces the source used by Create; nil restores the
// package-wide source. Bodies already in the world keep their ids.
func (w *World) SetIDSource(ids *IDSource) {
	if ids == nil {
		ids = defaultIDs
	}
	w.ids = ids
}

// SetLogger redirects diagnostic output. A nil logger silences it.
func (w *World) SetLogger(l *log.Logger) { w.logger = l }

func (w *World) warnf(format string, args ...any) {
	if w == nil || w.logger == nil {
		return
	}
	w.logger.Printf(format, args...)
}

// AddBody attaches b to the world. A body belongs to at most one world and
// ids are unique within a world.
func (w *World) AddBody(b *Body) error {
	if b.world != nil {
		return fmt.Errorf("%w: body %d", ErrAttached, b.id)
	}
	if slices.ContainsFunc(w.bodies, func(o *Body) bool { return o.id == b.id }) {
		return fmt.Errorf("%w: body %d", ErrDuplicateID, b.id)
	}
	b.world = w
	w.bodies = append(w.bodies, b)
	return nil
}

// Create builds a body with the world's id source and attaches it.
func (w *World) Create(bb *BodyBuilder) (*Body, error) {
	b, err := bb.Build(w.ids)
	if err != nil {
		return nil, err
	}
	if err := w.AddBody(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Remove detaches b and reports whether it was in the world. It must not
// be called from inside Step, e.g. from a collision listener.
func (w *World) Remove(b *Body) bool {
	i := slices.Index(w.bodies, b)
	if i < 0 {
		return false
	}
	w.bodies = slices.Delete(w.bodies, i, i+1)
	b.world = nil
	return true
}

// Bodies returns the bodies in insertion order. The slice is a copy; the
// bodies are not.
func (w *World) Bodies() []*Body {
	return slices.Clone(w.bodies)
}

// Step advances the world by one unit of time:
//
//  1. gravity is applied to every body as g*mass
//  2. every body integrates
//  3. the edge policy runs, unless it is EdgeNone
//  4. every unordered pair of solid bodies that overlaps and is still
//     moving relative to each other is resolved at most once
func (w *World) Step() {
	for _, b := range w.bodies {
		if w.hasGravity {
			b.ApplyForce(w.gravity.Scale(b.mass))
		}
		b.Update()
	}
	if w.edgeMode != EdgeNone {
		for _, b := range w.bodies {
			b.edges(w.edgeMode, w.bounds)
		}
	}
	if w.collisions {
		w.sweep()
	}
	w.steps++
}

func (w *World) sweep() {
	clear(w.processed)
	for i, a := range w.bodies {
		for j, b := range w.bodies {
			if i == j {
				continue
			}
			key := [2]int{min(i, j), max(i, j)}
			if _, done := w.processed[key]; done {
				continue
			}
			if !a.solid || !b.solid {
				continue
			}
			hit, handled := collide(a, b)
			if !handled && w.diagnostics {
				w.warnf("no collision test for %s x %s (bodies %d, %d)", a.Kind(), b.Kind(), a.id, b.id)
			}
			if !hit || a.vel.Sub(b.vel).Mag() <= 0 {
				continue
			}
			if Resolve(a, b) {
				w.processed[key] = struct{}{}
				for _, fn := range w.listeners {
					fn(a, b)
				}
			}
		}
	}
}

// QueryPoint returns the bodies whose shape contains p, in insertion order.
func (w *World) QueryPoint(p Vector2) []*Body {
	probe := &Body{pos: p, shape: Point{}, bounds: pointBox(p)}
	var hits []*Body
	for _, b := range w.bodies {
		if Collides(probe, b) {
			hits = append(hits, b)
		}
	}
	return hits
}
