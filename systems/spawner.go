package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/systems/factory"
	"github.com/automoto/rigid2d/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner adds a body at the cursor on left click (a rectangle while
// shift is held, an ellipse otherwise) and removes the topmost body under
// the cursor on right click.
func UpdateSpawner(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.LeftClick && !input.RightClick {
		return
	}
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	cursor := physics.Vector2{X: float64(input.CursorX), Y: float64(input.CursorY)}

	if input.RightClick {
		removeAt(ecs, sim, cursor)
		return
	}
	if !sim.World.Bounds().Contains(cursor) {
		return
	}
	spawnAt(ecs, sim, cursor, GetAction(input, cfg.ActionSpawnRect).Pressed)
}

func spawnAt(ecs *ecs.ECS, sim *components.SimulationData, p physics.Vector2, rect bool) {
	size := cfg.Simulation.SpawnSize
	angle := rand.Float64() * 2 * math.Pi
	vel := physics.Vector2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(cfg.Simulation.SpawnSpeed)

	var shape physics.Shape = physics.Ellipse{}
	if rect {
		shape = physics.Rectangle{Centered: true}
	}
	body, err := sim.World.Create(physics.NewBodyBuilder(p.X, p.Y, size, size).
		Shape(shape).
		Velocity(vel).
		Mass(cfg.Simulation.SpawnMass).
		Restitution(cfg.Simulation.SpawnRestitution))
	if err != nil {
		log.Printf("[spawner] could not create body: %v", err)
		return
	}

	e := factory.CreateBody(ecs, sim, body, "spawned", factory.PaletteColor(int(body.ID())))
	e.AddComponent(tags.Spawned)
}

func removeAt(ecs *ecs.ECS, sim *components.SimulationData, p physics.Vector2) {
	hits := sim.World.QueryPoint(p)
	if len(hits) == 0 {
		return
	}
	// Later bodies draw on top.
	body := hits[len(hits)-1]
	sim.World.Remove(body)
	if e, ok := sim.Entries[body]; ok {
		ecs.World.Remove(e.Entity())
		delete(sim.Entries, body)
	}
}
