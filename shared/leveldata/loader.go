package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// worldObject is the name of the object whose rectangle and properties
// define the world. Every other object becomes a body.
const worldObject = "world"

// LoadScene parses a TMX file into a Scene. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (headless driver).
//
// Without a world object the bounds cover the whole map, gravity is off and
// collisions are on.
func LoadScene(fsys fs.FS, tmxPath string) (*Scene, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Bounds: Rect{
			W: float64(levelMap.Width * levelMap.TileWidth),
			H: float64(levelMap.Height * levelMap.TileHeight),
		},
		Collisions: true,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			if o.Name == worldObject {
				if err := parseWorld(scene, o); err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				continue
			}
			spec, err := parseBody(o)
			if err != nil {
				return nil, fmt.Errorf("%s: object %d %q: %w", tmxPath, o.ID, o.Name, err)
			}
			scene.Bodies = append(scene.Bodies, spec)
		}
	}

	return scene, nil
}

// LoadAllScenes discovers all .tmx files in dir within fsys and returns them
// keyed by stem name, plus the sorted list of names.
func LoadAllScenes(fsys fs.FS, dir string) (map[string]*Scene, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenes := make(map[string]*Scene, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		scene, err := LoadScene(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		scenes[scene.Name] = scene
		names = append(names, scene.Name)
	}

	sort.Strings(names)
	return scenes, names, nil
}

func parseWorld(scene *Scene, o *tiled.Object) error {
	p := props(o.Properties.GetString)
	scene.Bounds = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}

	var err error
	if scene.GravityX, err = p.getFloat("gravityX", 0); err != nil {
		return err
	}
	if scene.GravityY, err = p.getFloat("gravityY", 0); err != nil {
		return err
	}
	if scene.HasGravity, err = p.getBool("gravity", true); err != nil {
		return err
	}
	if scene.Collisions, err = p.getBool("collisions", true); err != nil {
		return err
	}
	if scene.Diagnostics, err = p.getBool("diagnostics", false); err != nil {
		return err
	}
	scene.EdgeMode = strings.ToLower(p("edgeMode"))
	return nil
}

func parseBody(o *tiled.Object) (BodySpec, error) {
	p := props(o.Properties.GetString)
	spec := BodySpec{
		Name:  o.Name,
		X:     o.X,
		Y:     o.Y,
		W:     o.Width,
		H:     o.Height,
		Color: p("color"),
	}

	switch {
	case len(o.Ellipses) > 0:
		spec.Shape = ShapeEllipse
	case len(o.Polygons) > 0:
		spec.Shape = ShapePolygon
	case o.Width == 0 && o.Height == 0:
		spec.Shape = ShapePoint
	default:
		spec.Shape = ShapeRectangle
	}
	if s := strings.ToLower(p("shape")); s != "" {
		switch s {
		case ShapePoint, ShapeRectangle:
			if spec.Shape == ShapePolygon || spec.Shape == ShapeEllipse {
				return spec, fmt.Errorf("shape %q conflicts with %s geometry", s, spec.Shape)
			}
			spec.Shape = s
		case ShapeEllipse, ShapePolygon:
			if s != spec.Shape {
				return spec, fmt.Errorf("shape %q needs %s geometry", s, s)
			}
		default:
			return spec, fmt.Errorf("unknown shape %q", s)
		}
	}

	var err error
	if spec.Centered, err = p.getBool("centered", false); err != nil {
		return spec, err
	}

	switch spec.Shape {
	case ShapeEllipse:
		spec.X, spec.Y = o.X+o.Width/2, o.Y+o.Height/2
	case ShapeRectangle:
		if spec.Centered {
			spec.X, spec.Y = o.X+o.Width/2, o.Y+o.Height/2
		}
	case ShapePolygon:
		poly := o.Polygons[0]
		if poly.Points == nil || len(*poly.Points) < 3 {
			return spec, fmt.Errorf("polygon needs at least 3 points")
		}
		spec.Vertices = make([]Point, len(*poly.Points))
		for i, pt := range *poly.Points {
			spec.Vertices[i] = Point{X: pt.X, Y: pt.Y}
		}
		spec.W, spec.H = extent(spec.Vertices)
	}

	if spec.Mass, err = p.getFloat("mass", 1); err != nil {
		return spec, err
	}
	if !(spec.Mass > 0) {
		return spec, fmt.Errorf("mass must be positive, got %v", spec.Mass)
	}
	if spec.Restitution, err = p.getFloat("restitution", 1); err != nil {
		return spec, err
	}
	if spec.Friction, err = p.getFloat("friction", 0); err != nil {
		return spec, err
	}
	if spec.VX, err = p.getFloat("vx", 0); err != nil {
		return spec, err
	}
	if spec.VY, err = p.getFloat("vy", 0); err != nil {
		return spec, err
	}
	if spec.Static, err = p.getBool("static", false); err != nil {
		return spec, err
	}
	if spec.Solid, err = p.getBool("solid", true); err != nil {
		return spec, err
	}
	return spec, nil
}

func extent(pts []Point) (w, h float64) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}

// props reads typed properties with defaults for missing values.
type props func(name string) string

func (p props) getFloat(name string, def float64) (float64, error) {
	s := p(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}

func (p props) getBool(name string, def bool) (bool, error) {
	s := p(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}
