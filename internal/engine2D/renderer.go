package engine2D

import (
	"image"
	"math"
	"time"

	"hero-particles/internal/config"
	"hero-particles/internal/convert"
	"hero-particles/internal/engine2D/effect"
	"hero-particles/internal/engine2D/glyph"
	"hero-particles/internal/engine2D/particle"
	"hero-particles/internal/engine2D/shader"
	"hero-particles/internal/input"
	"hero-particles/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	GridSpacing = 12
	GridAlpha   = 0.05 * 0.8

	// Spring frequency of the eased RGB shift offset.
	AberrationFrequency = 8.0
)

// NewRenderer builds the CPU side state. GPU resources are created by UpdateViewport.
func NewRenderer(opts Options) *Renderer {
	if opts.Sampler == nil {
		opts.Sampler = glyph.NewSampler(nil, nil)
	}
	if opts.Field == nil {
		opts.Field = particle.NewField(particle.DustCount, nil)
	}
	if opts.Physics == (particle.Physics{}) {
		opts.Physics = particle.DefaultPhysics()
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	r := &Renderer{
		Sampler:    opts.Sampler,
		Simulator:  particle.NewSimulator(opts.Physics, nil),
		Field:      opts.Field,
		Tracker:    input.NewTracker(input.Rect{}),
		Ring:       input.NewRingAngle(opts.Now),
		Aberration: effect.NewAberration(opts.FPS, AberrationFrequency),
		StartTime:  opts.Now,
	}
	r.SetControls(opts.Controls)
	return r
}

// SetControls applies new controls and resamples the glyph cloud when any sampling input changed.
// It reports whether the cloud was regenerated.
func (r *Renderer) SetControls(c config.Controls) bool {
	r.Controls = c

	r.palette = particle.Palette{
		Tint:            config.MustColor(c.Color, colorful.Color{R: 1, G: 1, B: 1}),
		GradientStart:   config.MustColor(c.GradientStart, colorful.Color{R: 1, G: 1, B: 1}),
		GradientEnd:     config.MustColor(c.GradientEnd, colorful.Color{R: 1, G: 1, B: 1}),
		GradientEnabled: c.GradientEnabled,
	}
	r.background = toRL(config.MustColor(c.BackgroundColor, colorful.Color{}), 1)

	key := c.SamplerKey()
	if r.regenerated > 0 && key == r.samplerKey {
		return false
	}
	r.samplerKey = key

	start := time.Now()
	rest := r.Sampler.Sample(glyph.Options{
		Text:     key.Text,
		MaxLines: key.LineCount,
		Font:     key.Font,
		Density:  key.Density,
		Spacing:  key.Spacing,
		LineGap:  key.LineGap,
	})
	r.Simulator.SetRest(rest)
	r.regenerated++

	utils.Info("Renderer: sampled %d particles for %q in %s", r.Simulator.Count(), key.Text, time.Since(start).Round(time.Millisecond))
	return true
}

// UpdateViewport resizes the surface, recreating the scene and grid textures when the size changed.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.Tracker.Resize(input.Rect{Width: float64(width), Height: float64(height)})

	if r.Scene != nil && r.Width == width && r.Height == height {
		return
	}
	r.Width, r.Height = width, height

	r.unloadTargets()

	scene := rl.LoadRenderTexture(int32(width), int32(height))
	rl.SetTextureFilter(scene.Texture, rl.FilterBilinear)
	r.Scene = &scene
	r.Grid = loadGridTexture(width, height)

	if r.Post == nil {
		r.Post = shader.NewChromaticAberrationPass()
	}
	utils.Debug("Renderer: viewport %dx%d", width, height)
}

// UpdatePointer feeds a pointer sample in surface pixels.
func (r *Renderer) UpdatePointer(x, y float64, now time.Time) {
	r.Tracker.Move(x, y)
	if ndc, ok := r.Tracker.NDC(); ok {
		r.Ring.Update(ndc, now)
	}
}

// LeavePointer marks the pointer as outside the surface.
func (r *Renderer) LeavePointer() {
	r.Tracker.Leave()
}

// Update advances the simulation, the dust and the post-process easing by dt seconds.
func (r *Renderer) Update(dt float64, now time.Time) {
	r.Ring.Tick(now)
	r.Simulator.Update(dt, r.Tracker.World(), &r.Controls)
	r.Field.Update(dt)

	target := effect.AberrationTarget(r.Controls.RGBShiftIntensity, r.Controls.RGBShiftAngle, r.Ring.Intensity())
	r.Aberration.Step(target, dt)
}

// Render draws the scene into the scene texture and presents it through the post-process pass.
// Call between BeginDrawing and EndDrawing.
func (r *Renderer) Render() {
	if r.Scene == nil {
		return
	}

	rl.BeginTextureMode(*r.Scene)
	rl.ClearBackground(r.background)
	if r.Controls.BackgroundGridEnabled && r.Grid != nil {
		rl.DrawTexture(*r.Grid, 0, 0, rl.White)
	}
	rl.BeginBlendMode(rl.BlendAlpha)
	r.drawDust()
	r.drawParticles()
	rl.EndBlendMode()
	rl.EndTextureMode()

	src := rl.NewRectangle(0, 0, float32(r.Scene.Texture.Width), -float32(r.Scene.Texture.Height))
	dst := rl.NewRectangle(0, 0, float32(r.Width), float32(r.Height))

	rl.ClearBackground(r.background)
	if r.Post.Ready() {
		rl.BeginShaderMode(r.Post.Shader)
		shader.ApplyPass(r.Post, shader.State{Offset: r.Aberration.Offset()})
		rl.DrawTexturePro(r.Scene.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		rl.EndShaderMode()
	} else {
		rl.DrawTexturePro(r.Scene.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}
}

// Capture reads the scene texture back into an image (before the post-process pass).
func (r *Renderer) Capture() image.Image {
	if r.Scene == nil {
		return nil
	}
	img := rl.LoadImageFromTexture(r.Scene.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)
	frame := convert.FromPixels(colors, int(img.Width), int(img.Height))
	if frame == nil {
		return nil
	}
	return frame
}

// Background is the resolved background color.
func (r *Renderer) Background() colorful.Color {
	return config.MustColor(r.Controls.BackgroundColor, colorful.Color{})
}

func (r *Renderer) Stats() Stats {
	_, inside := r.Tracker.NDC()
	off := r.Aberration.Offset()
	return Stats{
		Particles:     r.Simulator.Count(),
		Dust:          len(r.Field.Dust),
		Regenerations: r.regenerated,
		SimTime:       r.Simulator.Time(),
		Intensity:     r.Ring.Intensity(),
		Angle:         r.Ring.Angle(),
		Offset:        [2]float64{off.X, off.Y},
		PointerInside: inside,
	}
}

// Unload releases every GPU resource owned by the renderer.
func (r *Renderer) Unload() {
	r.unloadTargets()
	if r.Post != nil {
		r.Post.Unload()
		r.Post = nil
	}
}

func (r *Renderer) unloadTargets() {
	if r.Scene != nil {
		rl.UnloadRenderTexture(*r.Scene)
		r.Scene = nil
	}
	if r.Grid != nil {
		rl.UnloadTexture(*r.Grid)
		r.Grid = nil
	}
}

func loadGridTexture(width, height int) *rl.Texture2D {
	img := rl.GenImageColor(width, height, rl.Blank)
	dot := rl.ColorAlpha(rl.White, GridAlpha)
	for y := 0; y < height; y += GridSpacing {
		for x := 0; x < width; x += GridSpacing {
			rl.ImageDrawPixel(img, int32(x), int32(y), dot)
		}
	}
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &tex
}

func toRL(c colorful.Color, alpha float64) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, uint8(math.Round(alpha*255)))
}
