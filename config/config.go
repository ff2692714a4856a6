package config

import "image/color"

type Config struct {
	Width  int
	Height int

	// Level is the scene loaded first; empty picks the first one by name.
	Level string
}

// SimulationConfig contains values for bodies created at runtime and for
// the gravity toggle
type SimulationConfig struct {
	// Gravity applied when a scene without gravity has it toggled on
	DefaultGravityX float64
	DefaultGravityY float64

	// Bodies spawned with the mouse
	SpawnSize        float64
	SpawnMass        float64
	SpawnRestitution float64
	SpawnSpeed       float64 // initial speed in a random direction

	// Collision flash
	FlashDuration  float32 // seconds
	FlashIntensity float32 // 0..1 blend towards FlashColor
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	BoundsColor     color.RGBA
	StaticColor     color.RGBA
	NonSolidColor   color.RGBA
	FlashColor      color.RGBA
	DebugColor      color.RGBA
	VelocityColor   color.RGBA
	HUDTextColor    color.RGBA
	HUDTextBgColor  color.RGBA

	// Palette cycles through colours for bodies without one
	Palette []color.RGBA

	HUDMargin     float64
	HUDLineHeight float64
	HUDFontSize   float64
	SmallFontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds bool // start with the AABB overlay on
}

// Global configuration instances
var C *Config
var Simulation SimulationConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Simulation = SimulationConfig{
		DefaultGravityX: 0,
		DefaultGravityY: 0.2,

		SpawnSize:        16,
		SpawnMass:        1,
		SpawnRestitution: 0.9,
		SpawnSpeed:       2,

		FlashDuration:  0.25,
		FlashIntensity: 0.8,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 16, G: 16, B: 24, A: 255},
		BoundsColor:     color.RGBA{R: 60, G: 60, B: 80, A: 255},
		StaticColor:     Grey,
		NonSolidColor:   color.RGBA{R: 80, G: 80, B: 120, A: 160},
		FlashColor:      White,
		DebugColor:      Cyan,
		VelocityColor:   Yellow,
		HUDTextColor:    White,
		HUDTextBgColor:  BlackOverlay,

		Palette: []color.RGBA{Orange, LightGreen, LightBlue, Magenta, Yellow, Red},

		HUDMargin:     8,
		HUDLineHeight: 14,
		HUDFontSize:   12,
		SmallFontSize: 10,
	}

	Debug = DebugConfig{
		ShowBounds: false,
	}
}
