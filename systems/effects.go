package systems

import (
	"github.com/automoto/rigid2d/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameSeconds = 1.0 / 60

// UpdateEffects advances collision flashes. Flashes keep fading while the
// simulation is paused.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		amount, done := flash.Tween.Update(frameSeconds)
		flash.Amount = amount
		if done {
			flash.Tween = nil
			flash.Amount = 0
		}
	})
}
