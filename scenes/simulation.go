package scenes

import (
	"log"
	"slices"
	"sync"

	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/shared/leveldata"
	"github.com/automoto/rigid2d/systems"
	"github.com/automoto/rigid2d/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationScene runs one physics world at a time and rebuilds it in place
// on reset or level change, so viewer settings carry over.
type SimulationScene struct {
	ecs    *ecs.ECS
	levels map[string]*leveldata.Scene
	names  []string
	index  int
	once   sync.Once
}

// NewSimulationScene starts on the level called start, or the first level
// by name when start is empty or unknown.
func NewSimulationScene(levels map[string]*leveldata.Scene, names []string, start string) *SimulationScene {
	index := slices.Index(names, start)
	if index < 0 {
		index = 0
	}
	return &SimulationScene{levels: levels, names: names, index: index}
}

func (ss *SimulationScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	entry, ok := components.Simulation.First(ss.ecs.World)
	if !ok {
		return
	}
	switch components.Simulation.Get(entry).Request {
	case components.RequestReset:
		ss.load(ss.index)
	case components.RequestNextLevel:
		ss.load((ss.index + 1) % len(ss.names))
	}
}

func (ss *SimulationScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SimulationScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSpawner)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(systems.UpdateEffects)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ss.ecs = ecs
	ss.load(ss.index)
}

// load replaces the running world with a fresh copy of level i. A level
// that fails to build leaves the previous world running.
func (ss *SimulationScene) load(i int) {
	name := ss.names[i]
	scene := ss.levels[name]

	if entry, ok := components.Simulation.First(ss.ecs.World); ok {
		components.Simulation.Get(entry).Request = components.RequestNone
	}
	if _, err := factory.CreateSimulation(ss.ecs, scene); err != nil {
		log.Printf("[scene] cannot load %s: %v", name, err)
		return
	}
	ss.index = i

	settings := systems.GetOrCreateSettings(ss.ecs)
	if settings.Level != name {
		settings.Level = name
		systems.SaveCurrentSettings(settings)
	}
}
