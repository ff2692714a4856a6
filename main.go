package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/rigid2d/assets"
	"github.com/automoto/rigid2d/config"
	"github.com/automoto/rigid2d/fonts"
	"github.com/automoto/rigid2d/scenes"
	"github.com/automoto/rigid2d/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(loader *assets.LevelLoader) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.SmallFontSize); err != nil {
		return nil, err
	}
	levels, names, err := loader.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSimulationScene(levels, names, config.C.Level),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "Scene to open first (default: last one viewed)")
	assetDir := flag.String("assets", "", "Load levels/*.tmx from this directory instead of the bundled ones")
	debug := flag.Bool("debug", false, "Start with the bounding box overlay on")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("rigid2d")

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings
	if *level != "" {
		config.C.Level = *level
	}
	if *debug {
		config.Debug.ShowBounds = true
	}

	loader := assets.NewLevelLoader()
	if *assetDir != "" {
		loader = assets.NewDirLevelLoader(os.DirFS(*assetDir))
	}

	game, err := NewGame(loader)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
