package components

import (
	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SceneRequest asks the scene to rebuild itself after the current update
type SceneRequest int

const (
	RequestNone SceneRequest = iota
	RequestReset
	RequestNextLevel
)

// SimulationData is the singleton holding the running world
type SimulationData struct {
	World *physics.World
	Scene *leveldata.Scene

	// Entries maps bodies back to the entities drawing them
	Entries map[*physics.Body]*donburi.Entry

	Collisions int  // resolved pairs since the scene was built
	StepOnce   bool // advance one step while paused
	Request    SceneRequest
}

var Simulation = donburi.NewComponentType[SimulationData]()
