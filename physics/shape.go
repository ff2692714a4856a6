package physics

import (
	"fmt"
	"strings"

	"github.com/automoto/rigid2d/shared/gamemath"
)

type (
	Vector2 = gamemath.Vector2
	AABB    = gamemath.Rect
)

// ShapeKind identifies one of the closed set of shapes a body can take.
type ShapeKind uint8

const (
	KindPoint ShapeKind = iota
	KindEllipse
	KindRectangle
	KindPolygon

	kindCount
)

// KindUnknown is reported for a body without a shape.
const KindUnknown ShapeKind = 0xff

var kindNames = [kindCount]string{
	KindPoint:     "point",
	KindEllipse:   "ellipse",
	KindRectangle: "rectangle",
	KindPolygon:   "polygon",
}

func (k ShapeKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// ParseShapeKind accepts the names produced by String, case-insensitively.
// "path" is accepted as an alias for polygon.
func ParseShapeKind(s string) (ShapeKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "path" {
		return KindPolygon, true
	}
	for k, name := range kindNames {
		if name == s {
			return ShapeKind(k), true
		}
	}
	return KindUnknown, false
}

// Shape is a sealed sum type over Point, Ellipse, Rectangle and Polygon.
// Geometry that every shape needs (position, width, height) lives on the
// Body; a Shape only carries what is specific to its kind.
type Shape interface {
	Kind() ShapeKind
	sealed()
}

// Point has no extent. Its bounding box is a 1x1 box centred on the body.
type Point struct{}

// Ellipse is centred on the body position; width and height are diameters.
type Ellipse struct{}

// Rectangle spans width x height from the body position, or around it when
// Centered is set.
type Rectangle struct {
	Centered bool
}

// Polygon is an ordered vertex list. Relative vertices are offsets from the
// body position and follow the body; absolute vertices stay where they are.
type Polygon struct {
	Vertices []Vector2
	Relative bool
}

func (Point) Kind() ShapeKind     { return KindPoint }
func (Ellipse) Kind() ShapeKind   { return KindEllipse }
func (Rectangle) Kind() ShapeKind { return KindRectangle }
func (Polygon) Kind() ShapeKind   { return KindPolygon }

func (Point) sealed()     {}
func (Ellipse) sealed()   {}
func (Rectangle) sealed() {}
func (Polygon) sealed()   {}

func kindOf(s Shape) ShapeKind {
	if s == nil {
		return KindUnknown
	}
	return s.Kind()
}

// cloneShape detaches polygon vertices from the caller's slice.
func cloneShape(s Shape) Shape {
	if p, ok := s.(Polygon); ok {
		p.Vertices = append([]Vector2(nil), p.Vertices...)
		return p
	}
	return s
}
