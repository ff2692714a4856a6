package factory

import (
	"fmt"
	"log"

	"github.com/automoto/rigid2d/archetypes"
	"github.com/automoto/rigid2d/components"
	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/shared/leveldata"
	"github.com/automoto/rigid2d/tags"
	"github.com/automoto/rigid2d/worldbuild"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation builds the scene's world and one entity per body,
// replacing any running simulation. When the scene fails to build the
// running one is left untouched.
func CreateSimulation(ecs *ecs.ECS, scene *leveldata.Scene) (*donburi.Entry, error) {
	world, spawned, err := worldbuild.Build(scene)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", scene.Name, err)
	}
	world.SetLogger(log.New(log.Writer(), "[physics] ", log.LstdFlags))

	DestroySimulation(ecs)
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{
		World:   world,
		Scene:   scene,
		Entries: make(map[*physics.Body]*donburi.Entry, len(spawned)),
	})
	sim := components.Simulation.Get(entry)

	for i, s := range spawned {
		CreateBody(ecs, sim, s.Body, s.Spec.Name, bodyColor(s.Spec, i))
	}

	world.OnCollision(func(a, b *physics.Body) {
		sim := components.Simulation.Get(entry)
		sim.Collisions++
		StartFlash(sim.Entries[a])
		StartFlash(sim.Entries[b])
	})

	log.Printf("[scene] %s: %d bodies, edge mode %s", scene.Name, world.Len(), world.EdgeMode())
	return entry, nil
}

// DestroySimulation removes the simulation singleton and every body entity.
func DestroySimulation(ecs *ecs.ECS) {
	var doomed []donburi.Entity
	tags.Body.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	if e, ok := components.Simulation.First(ecs.World); ok {
		doomed = append(doomed, e.Entity())
	}
	for _, entity := range doomed {
		ecs.World.Remove(entity)
	}
}
