// Package worldbuild turns a parsed scene into a populated physics world.
package worldbuild

import (
	"fmt"

	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/shared/leveldata"
)

// Spawned pairs a created body with the BodySpec it came from, so callers can
// look up presentation data such as the colour.
type Spawned struct {
	Body *physics.Body
	Spec leveldata.BodySpec
}

// Build creates a world with the scene's bounds and settings and adds every
// body in scene order.
func Build(scene *leveldata.Scene) (*physics.World, []Spawned, error) {
	b := scene.Bounds
	w := physics.NewWorld(b.X, b.Y, b.W, b.H)
	if err := Configure(w, scene); err != nil {
		return nil, nil, err
	}

	spawned := make([]Spawned, 0, len(scene.Bodies))
	for _, spec := range scene.Bodies {
		body, err := w.Create(Builder(spec))
		if err != nil {
			return nil, nil, fmt.Errorf("scene %s: body %q: %w", scene.Name, spec.Name, err)
		}
		spawned = append(spawned, Spawned{Body: body, Spec: spec})
	}
	return w, spawned, nil
}

// Configure applies the scene's gravity, edge mode and flags to w.
func Configure(w *physics.World, scene *leveldata.Scene) error {
	mode, err := physics.ParseEdgeMode(scene.EdgeMode)
	if err != nil {
		return fmt.Errorf("scene %s: %w", scene.Name, err)
	}
	w.SetEdgeMode(mode)
	if scene.HasGravity {
		w.SetGravity(physics.Vector2{X: scene.GravityX, Y: scene.GravityY})
	} else {
		w.DisableGravity()
	}
	w.SetCollisions(scene.Collisions)
	w.SetDiagnostics(scene.Diagnostics)
	return nil
}

// Builder maps a BodySpec onto a body builder.
func Builder(spec leveldata.BodySpec) *physics.BodyBuilder {
	bb := physics.NewBodyBuilder(spec.X, spec.Y, spec.W, spec.H).
		Shape(shapeOf(spec)).
		Velocity(physics.Vector2{X: spec.VX, Y: spec.VY}).
		Mass(spec.Mass).
		Restitution(spec.Restitution).
		Friction(spec.Friction)
	if spec.Static {
		bb.Static()
	}
	if !spec.Solid {
		bb.NonSolid()
	}
	return bb
}

func shapeOf(spec leveldata.BodySpec) physics.Shape {
	switch spec.Shape {
	case leveldata.ShapePoint:
		return physics.Point{}
	case leveldata.ShapeEllipse:
		return physics.Ellipse{}
	case leveldata.ShapePolygon:
		verts := make([]physics.Vector2, len(spec.Vertices))
		for i, v := range spec.Vertices {
			verts[i] = physics.Vector2{X: v.X, Y: v.Y}
		}
		return physics.Polygon{Vertices: verts, Relative: true}
	default:
		return physics.Rectangle{Centered: spec.Centered}
	}
}
