package systems

import (
	"github.com/automoto/rigid2d/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the world by one step per frame unless paused.
// A requested single step runs even while paused.
func UpdateSimulation(ecs *ecs.ECS) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	settings := GetOrCreateSettings(ecs)

	if settings.Paused && !sim.StepOnce {
		return
	}
	sim.StepOnce = false
	sim.World.Step()
}
