package components

import "github.com/yohamta/donburi"

// SettingsData holds the viewer settings that outlive a scene rebuild. The
// world's own settings (gravity, edge mode, collisions) come from the scene
// file and are read from the world directly.
type SettingsData struct {
	Debug  bool
	Paused bool
	Level  string // name of the scene on screen
}

var Settings = donburi.NewComponentType[SettingsData]()
