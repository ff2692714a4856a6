package tags

import "github.com/yohamta/donburi"

var (
	Body    = donburi.NewTag().SetName("Body")
	Static  = donburi.NewTag().SetName("Static")
	Spawned = donburi.NewTag().SetName("Spawned") // created with the mouse
)
