package physics

// BodyBuilder collects construction-time configuration for a Body.
//
//	b, err := physics.NewBodyBuilder(10, 10, 20, 20).
//		Shape(physics.Ellipse{}).
//		Mass(2).
//		Restitution(0.8).
//		Build(world.IDs())
type BodyBuilder struct {
	x, y, w, h  float64
	vel         Vector2
	mass        float64
	restitution float64
	friction    float64
	static      bool
	solid       bool
	shape       Shape
	onUpdate    UpdateHook
	onApply     ForceHook
}

func NewBodyBuilder(x, y, width, height float64) *BodyBuilder {
	return &BodyBuilder{
		x: x, y: y, w: width, h: height,
		mass:        1,
		restitution: 1,
		solid:       true,
		shape:       Rectangle{},
	}
}

func (bb *BodyBuilder) Shape(s Shape) *BodyBuilder         { bb.shape = s; return bb }
func (bb *BodyBuilder) Velocity(v Vector2) *BodyBuilder    { bb.vel = v; return bb }
func (bb *BodyBuilder) Mass(m float64) *BodyBuilder        { bb.mass = m; return bb }
func (bb *BodyBuilder) Restitution(e float64) *BodyBuilder { bb.restitution = e; return bb }
func (bb *BodyBuilder) Friction(mu float64) *BodyBuilder   { bb.friction = mu; return bb }
func (bb *BodyBuilder) Static() *BodyBuilder               { bb.static = true; return bb }
func (bb *BodyBuilder) NonSolid() *BodyBuilder             { bb.solid = false; return bb }

func (bb *BodyBuilder) OnUpdate(h UpdateHook) *BodyBuilder    { bb.onUpdate = h; return bb }
func (bb *BodyBuilder) OnApplyForce(h ForceHook) *BodyBuilder { bb.onApply = h; return bb }

// Build allocates an id from ids and returns the configured body. It fails
// only on an invalid mass; coefficients are clamped as by the setters.
func (bb *BodyBuilder) Build(ids *IDSource) (*Body, error) {
	if err := checkMass(bb.mass); err != nil {
		return nil, err
	}
	b := NewBody(ids, bb.x, bb.y, bb.w, bb.h)
	b.mass = bb.mass
	b.SetVelocity(bb.vel)
	b.SetRestitution(bb.restitution)
	b.SetFriction(bb.friction)
	b.SetStatic(bb.static)
	b.SetSolid(bb.solid)
	b.OnUpdate(bb.onUpdate)
	b.OnApplyForce(bb.onApply)
	if bb.shape != nil {
		b.SetShape(bb.shape)
	}
	return b, nil
}
