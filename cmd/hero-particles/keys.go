package main

import (
	"hero-particles/internal/config"
	"hero-particles/internal/convert"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard steps for the adjustable controls.
const (
	densityStep   = 4.0
	spacingStep   = 0.1
	sizeStep      = 0.05
	influenceStep = 0.25
)

var exportKeys = map[int32]convert.Format{
	rl.KeyP: convert.FormatPNG,
	rl.KeyJ: convert.FormatJPEG,
	rl.KeyV: convert.FormatSVG,
	rl.KeyR: convert.FormatLZ4,
}

func (window *Window) handleKeys() {
	c := window.renderer.Controls
	changed := true

	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		c.ParticleCount += densityStep
	case rl.IsKeyPressed(rl.KeyDown):
		c.ParticleCount -= densityStep
	case rl.IsKeyPressed(rl.KeyRight):
		c.TrailSpacing += spacingStep
	case rl.IsKeyPressed(rl.KeyLeft):
		c.TrailSpacing -= spacingStep
	case rl.IsKeyPressed(rl.KeyRightBracket):
		c.ParticleSize += sizeStep
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		c.ParticleSize -= sizeStep
	case rl.IsKeyPressed(rl.KeyEqual):
		c.CursorInfluenceSize += influenceStep
	case rl.IsKeyPressed(rl.KeyMinus):
		c.CursorInfluenceSize -= influenceStep
	case rl.IsKeyPressed(rl.KeyS):
		c.NextShape()
	case rl.IsKeyPressed(rl.KeyG):
		c.GradientEnabled = !c.GradientEnabled
	case rl.IsKeyPressed(rl.KeyL):
		c.LineMode = 3 - c.LineMode
	case rl.IsKeyPressed(rl.KeyB):
		c.BackgroundGridEnabled = !c.BackgroundGridEnabled
	default:
		changed = false
	}
	if changed {
		window.applyControls(c, "keyboard")
	}

	for key, format := range exportKeys {
		if rl.IsKeyPressed(key) {
			window.export(format)
		}
	}
}
