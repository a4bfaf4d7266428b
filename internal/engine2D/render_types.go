package engine2D

import (
	"time"

	"hero-particles/internal/config"
	"hero-particles/internal/engine2D/effect"
	"hero-particles/internal/engine2D/glyph"
	"hero-particles/internal/engine2D/particle"
	"hero-particles/internal/engine2D/shader"
	"hero-particles/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer owns the simulation state and draws it through raylib. All methods must be
// called from the thread that created the window.
type Renderer struct {
	Width  int
	Height int

	Controls   config.Controls
	Sampler    *glyph.Sampler
	Simulator  *particle.Simulator
	Field      *particle.Field
	Tracker    *input.Tracker
	Ring       *input.RingAngle
	Aberration *effect.Aberration

	Scene *rl.RenderTexture2D
	Grid  *rl.Texture2D
	Post  *shader.Pass

	StartTime time.Time

	samplerKey  config.SamplerKey
	palette     particle.Palette
	background  rl.Color
	regenerated int
}

// Options configure NewRenderer.
type Options struct {
	Controls config.Controls
	Sampler  *glyph.Sampler
	Physics  particle.Physics
	Field    *particle.Field
	FPS      int
	Now      time.Time
}

// Stats summarize the current frame for the debug overlay and the event log.
type Stats struct {
	Particles     int
	Dust          int
	Regenerations int
	SimTime       float64
	Intensity     float64
	Angle         float64
	Offset        [2]float64
	PointerInside bool
}
