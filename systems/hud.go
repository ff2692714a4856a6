package systems

import (
	"fmt"

	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/fonts"
	"github.com/automoto/rigid2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const helpLine = "G gravity  E edges  C collisions  D debug  P pause  . step  R reset  N next  click spawn  shift+click box  right click remove"

// Reusable line buffer to avoid per-frame allocations
var hudLines []string

// DrawHUD draws the world status in the top-left corner and the key help
// along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	settings := GetOrCreateSettings(ecs)
	world := sim.World

	spawned := 0
	tags.Spawned.Each(ecs.World, func(*donburi.Entry) { spawned++ })

	gravity := "off"
	if g, on := world.Gravity(); on {
		gravity = fmt.Sprintf("(%.2f, %.2f)", g.X, g.Y)
	}
	status := "running"
	if settings.Paused {
		status = "paused"
	}

	hudLines = append(hudLines[:0],
		fmt.Sprintf("%s  [%s]", sim.Scene.Name, status),
		fmt.Sprintf("bodies %d (%d spawned)  step %d", world.Len(), spawned, world.StepCount()),
		fmt.Sprintf("collisions %d  resolve %v", sim.Collisions, world.Collisions()),
		fmt.Sprintf("gravity %s  edges %s", gravity, world.EdgeMode()),
	)

	face := fonts.HUD.Get()
	margin := cfg.UI.HUDMargin
	lineH := cfg.UI.HUDLineHeight

	width := 0
	for _, l := range hudLines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	vector.FillRect(screen,
		float32(margin/2), float32(margin/2),
		float32(float64(width)+margin), float32(float64(len(hudLines))*lineH+margin),
		cfg.UI.HUDTextBgColor, false)

	for i, l := range hudLines {
		y := margin + lineH*float64(i+1) - 3
		text.Draw(screen, l, face, int(margin), int(y), cfg.UI.HUDTextColor)
	}

	small := fonts.Small.Get()
	text.Draw(screen, helpLine, small, int(margin), screen.Bounds().Dy()-int(margin), cfg.UI.HUDTextColor)
}
