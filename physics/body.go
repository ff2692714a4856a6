package physics

import (
	"fmt"
	"math"

	"github.com/automoto/rigid2d/shared/gamemath"
)

// UpdateHook is consulted when a static body is asked to integrate. Returning
// true keeps it frozen; returning false lets it move for this one step.
type UpdateHook func(b *Body) bool

// ForceHook transforms a force before it is accumulated, e.g. to clamp or
// redirect it.
type ForceHook func(b *Body, f Vector2) Vector2

func keepFrozen(*Body) bool                    { return true }
func identityForce(_ *Body, f Vector2) Vector2 { return f }

// Body is a point mass with a collision shape. A Body is owned by at most
// one World; it is not safe for concurrent use.
type Body struct {
	id uint64

	pos, vel, acc Vector2
	width, height float64

	mass        float64
	restitution float64
	friction    float64
	static      bool
	solid       bool

	shape  Shape
	abs    []Vector2 // polygon vertices in world coordinates
	convex bool
	bounds AABB

	world *World

	onUpdate UpdateHook
	onApply  ForceHook
}

// NewBody creates a dynamic, solid rectangle of unit mass and full
// restitution at (x, y). Its id comes from ids, or from a package-wide
// source when ids is nil.
func NewBody(ids *IDSource, x, y, width, height float64) *Body {
	if ids == nil {
		ids = defaultIDs
	}
	b := &Body{
		id:          ids.Next(),
		pos:         Vector2{X: x, Y: y},
		width:       width,
		height:      height,
		mass:        1,
		restitution: 1,
		solid:       true,
		shape:       Rectangle{},
		onUpdate:    keepFrozen,
		onApply:     identityForce,
	}
	b.reshape()
	return b
}

func (b *Body) ID() uint64 { return b.id }

// World returns the world that owns b, or nil.
func (b *Body) World() *World { return b.world }

func (b *Body) Position() Vector2     { return b.pos }
func (b *Body) Velocity() Vector2     { return b.vel }
func (b *Body) Acceleration() Vector2 { return b.acc }

func (b *Body) SetPosition(p Vector2) {
	b.pos = p
	b.refresh()
}

func (b *Body) SetX(x float64) { b.SetPosition(Vector2{X: x, Y: b.pos.Y}) }
func (b *Body) SetY(y float64) { b.SetPosition(Vector2{X: b.pos.X, Y: y}) }

func (b *Body) SetVelocity(v Vector2)  { b.vel = v }
func (b *Body) SetVelocityX(x float64) { b.vel.X = x }
func (b *Body) SetVelocityY(y float64) { b.vel.Y = y }

func (b *Body) SetAcceleration(a Vector2)  { b.acc = a }
func (b *Body) SetAccelerationX(x float64) { b.acc.X = x }
func (b *Body) SetAccelerationY(y float64) { b.acc.Y = y }

func (b *Body) Size() (width, height float64) { return b.width, b.height }

func (b *Body) SetSize(width, height float64) {
	b.width, b.height = width, height
	b.refresh()
}

func (b *Body) Mass() float64 { return b.mass }

// SetMass rejects zero, negative and non-finite masses.
func (b *Body) SetMass(m float64) error {
	if err := checkMass(m); err != nil {
		return err
	}
	b.mass = m
	return nil
}

func checkMass(m float64) error {
	if !(m > 0) || math.IsInf(m, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMass, m)
	}
	return nil
}

func (b *Body) Restitution() float64 { return b.restitution }

// SetRestitution stores e clamped to [0, 1]; see gamemath.ClampCoefficient.
func (b *Body) SetRestitution(e float64) { b.restitution = gamemath.ClampCoefficient(e) }

func (b *Body) Friction() float64 { return b.friction }

func (b *Body) SetFriction(mu float64) { b.friction = gamemath.ClampCoefficient(mu) }

func (b *Body) Static() bool          { return b.static }
func (b *Body) SetStatic(static bool) { b.static = static }

func (b *Body) Solid() bool         { return b.solid }
func (b *Body) SetSolid(solid bool) { b.solid = solid }

// Shape returns the body's shape. Polygon vertices are copied.
func (b *Body) Shape() Shape { return cloneShape(b.shape) }

func (b *Body) Kind() ShapeKind { return kindOf(b.shape) }

// SetShape switches the drawing and collision mode of the body.
func (b *Body) SetShape(s Shape) {
	b.shape = cloneShape(s)
	b.reshape()
}

// SetVertices replaces the vertices of a polygon body, keeping its
// relative/absolute representation.
func (b *Body) SetVertices(verts []Vector2) error {
	p, ok := b.shape.(Polygon)
	if !ok {
		return fmt.Errorf("%w: set vertices on %s body %d", ErrShapeMismatch, b.Kind(), b.id)
	}
	p.Vertices = append([]Vector2(nil), verts...)
	b.shape = p
	b.reshape()
	return nil
}

// SetCentered moves the anchor of a rectangle body between its top-left
// corner and its centre.
func (b *Body) SetCentered(centered bool) error {
	r, ok := b.shape.(Rectangle)
	if !ok {
		return fmt.Errorf("%w: set centered on %s body %d", ErrShapeMismatch, b.Kind(), b.id)
	}
	r.Centered = centered
	b.shape = r
	b.refresh()
	return nil
}

// Vertices returns the polygon vertices in world coordinates, or nil for
// other shapes.
func (b *Body) Vertices() []Vector2 {
	if len(b.abs) == 0 {
		return nil
	}
	return append([]Vector2(nil), b.abs...)
}

func (b *Body) Bounds() AABB { return b.bounds }

// OnUpdate installs the hook consulted before a static body integrates.
// A nil hook restores the default, which keeps static bodies frozen.
func (b *Body) OnUpdate(h UpdateHook) {
	if h == nil {
		h = keepFrozen
	}
	b.onUpdate = h
}

// OnApplyForce installs the hook applied to every force before it is
// accumulated. A nil hook restores the identity.
func (b *Body) OnApplyForce(h ForceHook) {
	if h == nil {
		h = identityForce
	}
	b.onApply = h
}

// ApplyForce accumulates f/mass into the acceleration for the current step.
// Static bodies ignore forces.
func (b *Body) ApplyForce(f Vector2) {
	if b.static {
		return
	}
	f = b.onApply(b, f)
	b.acc = b.acc.Add(f.Div(b.mass))
}

// Update integrates one step: velocity += acceleration, position +=
// velocity, acceleration = 0. It reports whether the body moved; a static
// body stays put unless its update hook releases it.
func (b *Body) Update() bool {
	if b.static && b.onUpdate(b) {
		return false
	}
	b.vel = b.vel.Add(b.acc)
	b.pos = b.pos.Add(b.vel)
	b.acc = Vector2{}
	b.refresh()
	return true
}

// FrictionForce is the retarding force -mu*m along the direction of travel.
// It is never applied automatically; callers may pass it to ApplyForce.
func (b *Body) FrictionForce() Vector2 {
	return gamemath.FrictionForce(b.vel, b.friction, b.mass)
}

// rect is the rectangle a Rectangle body occupies.
func (b *Body) rect() AABB {
	if r, ok := b.shape.(Rectangle); ok && r.Centered {
		return AABB{X: b.pos.X - b.width/2, Y: b.pos.Y - b.height/2, W: b.width, H: b.height}
	}
	return AABB{X: b.pos.X, Y: b.pos.Y, W: b.width, H: b.height}
}

// reshape runs after the vertex list changes.
func (b *Body) reshape() {
	b.convex = false
	if p, ok := b.shape.(Polygon); ok {
		b.convex = gamemath.Convex(p.Vertices)
	}
	b.refresh()
}

// refresh re-expresses polygon vertices in world coordinates and recomputes
// the bounding box. It runs whenever position, size or shape changes.
func (b *Body) refresh() {
	b.abs = b.abs[:0]
	switch s := b.shape.(type) {
	case Point:
		b.bounds = pointBox(b.pos)
	case Ellipse:
		b.bounds = AABB{X: b.pos.X - b.width/2, Y: b.pos.Y - b.height/2, W: b.width, H: b.height}
	case Rectangle:
		b.bounds = b.rect()
	case Polygon:
		for _, v := range s.Vertices {
			if s.Relative {
				v = v.Add(b.pos)
			}
			b.abs = append(b.abs, v)
		}
		if len(b.abs) == 0 {
			b.bounds = pointBox(b.pos)
			return
		}
		b.bounds = gamemath.BoundsOf(b.abs)
	default:
		b.bounds = pointBox(b.pos)
	}
}

func pointBox(p Vector2) AABB {
	return AABB{X: p.X - 0.5, Y: p.Y - 0.5, W: 1, H: 1}
}
