package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical simulation action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleGravity
	ActionCycleEdge
	ActionToggleCollisions
	ActionToggleDebug
	ActionTogglePause
	ActionStep
	ActionReset
	ActionNextLevel
	ActionSpawnRect // held while clicking to spawn a rectangle
	ActionCount     // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleGravity: {
				Keys: []ebiten.Key{ebiten.KeyG},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionCycleEdge: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionToggleCollisions: {
				Keys: []ebiten.Key{ebiten.KeyC},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyF3},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionTogglePause: {
				Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeySpace},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionStep: {
				Keys: []ebiten.Key{ebiten.KeyPeriod},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionReset: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyN, ebiten.KeyTab},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionSpawnRect: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			},
		},
	}
}
