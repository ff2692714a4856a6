package systems

import (
	"log"

	"github.com/automoto/rigid2d/archetypes"
	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/physics"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, seeding it from the
// config on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowBounds,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings applies the toggle actions to the world and the viewer
// settings. It runs while paused.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	simEntry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(simEntry)
	world := sim.World
	changed := false

	if GetAction(input, cfg.ActionToggleGravity).JustPressed {
		toggleGravity(world, sim)
		g, on := world.Gravity()
		log.Printf("[settings] gravity %v (%.2f, %.2f)", on, g.X, g.Y)
	}
	if GetAction(input, cfg.ActionCycleEdge).JustPressed {
		world.SetEdgeMode(world.EdgeMode().Next())
		log.Printf("[settings] edge mode %s", world.EdgeMode())
	}
	if GetAction(input, cfg.ActionToggleCollisions).JustPressed {
		world.SetCollisions(!world.Collisions())
		log.Printf("[settings] collisions %v", world.Collisions())
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionTogglePause).JustPressed {
		settings.Paused = !settings.Paused
		changed = true
	}
	if settings.Paused && GetAction(input, cfg.ActionStep).JustPressed {
		sim.StepOnce = true
	}
	if GetAction(input, cfg.ActionReset).JustPressed {
		sim.Request = components.RequestReset
	}
	if GetAction(input, cfg.ActionNextLevel).JustPressed {
		sim.Request = components.RequestNextLevel
	}

	world.SetDebug(settings.Debug)
	if changed {
		SaveCurrentSettings(settings)
	}
}

// toggleGravity turns gravity off, or back on using the scene's vector. A
// scene without gravity gets the configured default.
func toggleGravity(world *physics.World, sim *components.SimulationData) {
	if _, on := world.Gravity(); on {
		world.DisableGravity()
		return
	}
	g := physics.Vector2{X: cfg.Simulation.DefaultGravityX, Y: cfg.Simulation.DefaultGravityY}
	if s := sim.Scene; s != nil && s.HasGravity && (s.GravityX != 0 || s.GravityY != 0) {
		g = physics.Vector2{X: s.GravityX, Y: s.GravityY}
	}
	world.SetGravity(g)
}
