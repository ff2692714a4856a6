// Package leveldata parses TMX scene files shared by the demo client and the
// headless driver. It has no dependencies on ebitengine, donburi or the
// physics package. Pure data only.
package leveldata

// Shape names used in BodySpec.Shape.
const (
	ShapePoint     = "point"
	ShapeEllipse   = "ellipse"
	ShapeRectangle = "rectangle"
	ShapePolygon   = "polygon"
)

// Scene is one TMX file: the world settings plus the bodies to create.
type Scene struct {
	Name   string
	Bounds Rect

	// Gravity is only applied when HasGravity is set.
	GravityX, GravityY float64
	HasGravity         bool

	EdgeMode    string // "none", "hold", "wrap", "bounce"; empty means none
	Collisions  bool
	Diagnostics bool

	Bodies []BodySpec
}

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// BodySpec describes one body. X and Y are the body position as the physics
// package uses it: the centre for ellipses and centred rectangles, the
// top-left corner for other rectangles, the origin of polygon vertices.
type BodySpec struct {
	Name  string
	Shape string

	X, Y float64
	W, H float64

	Centered bool
	Vertices []Point // relative to X, Y

	Mass        float64
	Restitution float64
	Friction    float64
	VX, VY      float64
	Static      bool
	Solid       bool

	Color string // "#rrggbb"; empty picks the palette default
}
