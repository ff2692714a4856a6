package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the collision flash on a body. Amount runs from the
// configured intensity down to 0 while the tween plays.
type FlashData struct {
	Tween  *gween.Tween // nil when idle
	Amount float32
}

var Flash = donburi.NewComponentType[FlashData]()
