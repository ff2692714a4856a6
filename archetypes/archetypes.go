package archetypes

import (
	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Body = newArchetype(
		tags.Body,
		components.Body,
		components.Render,
		components.Flash,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
