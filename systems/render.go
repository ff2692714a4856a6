package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/rigid2d/components"
	cfg "github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const ellipseSegments = 32

var (
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage avoids sampling the image edges when filling triangles
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Reusable buffers for triangle fans
	fanVertices []ebiten.Vertex
	fanIndices  []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawBodies draws the world bounds and every body entity in world order.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)

	b := sim.World.Bounds()
	strokeRect(screen, b, cfg.UI.BoundsColor)

	for _, body := range sim.World.Bodies() {
		e, ok := sim.Entries[body]
		if !ok {
			continue
		}
		drawBody(screen, body.State(), bodyDrawColor(e))
	}
}

func bodyDrawColor(e *donburi.Entry) color.RGBA {
	c := components.Render.Get(e).Color
	if flash := components.Flash.Get(e); flash.Amount > 0 {
		c = lerpColor(c, cfg.UI.FlashColor, flash.Amount)
	}
	return c
}

func drawBody(screen *ebiten.Image, s physics.BodyState, c color.RGBA) {
	if !s.Solid {
		c = cfg.UI.NonSolidColor
	}
	switch s.Kind {
	case physics.KindPoint:
		vector.DrawFilledCircle(screen, float32(s.Position.X), float32(s.Position.Y), 2, c, true)
	case physics.KindEllipse:
		fillEllipse(screen, s.Position, s.Width/2, s.Height/2, c)
	case physics.KindRectangle:
		r := s.Bounds
		if s.Solid {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		} else {
			strokeRect(screen, r, c)
		}
	case physics.KindPolygon:
		if s.Solid && gamemath.Convex(s.Vertices) {
			fillFan(screen, s.Vertices, c)
		}
		strokePolygon(screen, s.Vertices, c)
	}
}

func fillEllipse(screen *ebiten.Image, center physics.Vector2, rx, ry float64, c color.RGBA) {
	pts := make([]physics.Vector2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = physics.Vector2{X: center.X + rx*math.Cos(a), Y: center.Y + ry*math.Sin(a)}
	}
	fillFan(screen, pts, c)
}

// fillFan fills a convex outline as a fan of triangles around pts[0].
func fillFan(screen *ebiten.Image, pts []physics.Vector2, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	fanVertices = fanVertices[:0]
	fanIndices = fanIndices[:0]
	for _, p := range pts {
		fanVertices = append(fanVertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		fanIndices = append(fanIndices, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(fanVertices, fanIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func strokePolygon(screen *ebiten.Image, pts []physics.Vector2, c color.RGBA) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1, c, true)
	}
}

func strokeRect(screen *ebiten.Image, r physics.AABB, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func lerpColor(from, to color.RGBA, t float32) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
