package factory

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/rigid2d/archetypes"
	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/shared/leveldata"
	"github.com/automoto/rigid2d/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBody spawns the entity drawing body and registers it with sim. The
// body must already be in sim.World.
func CreateBody(ecs *ecs.ECS, sim *components.SimulationData, body *physics.Body, name string, c color.RGBA) *donburi.Entry {
	var entry *donburi.Entry
	if body.Static() {
		entry = archetypes.Body.Spawn(ecs, tags.Static)
	} else {
		entry = archetypes.Body.Spawn(ecs)
	}
	components.Body.SetValue(entry, components.BodyData{Body: body, Name: name})
	components.Render.SetValue(entry, components.RenderData{Color: c})
	sim.Entries[body] = entry
	return entry
}

// StartFlash (re)starts the collision flash on entry. A nil entry is ignored
// so listeners can pass map lookups straight through.
func StartFlash(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Tween = gween.New(cfg.Simulation.FlashIntensity, 0, cfg.Simulation.FlashDuration, ease.OutQuad)
	flash.Amount = cfg.Simulation.FlashIntensity
}

func bodyColor(spec leveldata.BodySpec, i int) color.RGBA {
	if spec.Static {
		return cfg.UI.StaticColor
	}
	if c, ok := ParseColor(spec.Color); ok {
		return c
	}
	return PaletteColor(i)
}

// PaletteColor picks the i-th palette colour, wrapping around.
func PaletteColor(i int) color.RGBA {
	p := cfg.UI.Palette
	if len(p) == 0 {
		return cfg.White
	}
	return p[i%len(p)]
}

// ParseColor reads "#rrggbb" or "#aarrggbb", the two forms Tiled writes.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	c := color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return color.RGBAModel.Convert(c).(color.RGBA), true
}
