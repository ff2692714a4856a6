package components

import (
	"image/color"

	"github.com/automoto/rigid2d/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its physics body. The world owns the body;
// the entity is only its presentation.
type BodyData struct {
	Body *physics.Body
	Name string
}

var Body = donburi.NewComponentType[BodyData]()

// RenderData holds how a body is drawn
type RenderData struct {
	Color color.RGBA
}

var Render = donburi.NewComponentType[RenderData]()
