package systems

import (
	"fmt"

	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// velocityScale stretches velocity vectors so slow bodies stay visible
const velocityScale = 4

// DrawDebug outlines every body's bounding box and velocity while the
// world's debug flag is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	world := components.Simulation.Get(entry).World
	if !world.Debug() {
		return
	}

	face := fonts.Small.Get()
	for _, s := range world.Snapshot() {
		strokeRect(screen, s.Bounds, cfg.UI.DebugColor)

		if !s.Static && !s.Velocity.IsZero() {
			end := s.Position.Add(s.Velocity.Scale(velocityScale))
			vector.StrokeLine(screen,
				float32(s.Position.X), float32(s.Position.Y), float32(end.X), float32(end.Y),
				1, cfg.UI.VelocityColor, true)
		}

		label := fmt.Sprintf("%d", s.ID)
		text.Draw(screen, label, face, int(s.Bounds.X), int(s.Bounds.Y)-2, cfg.UI.DebugColor)
	}
}
