package debug

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"hero-particles/internal/engine2D"
	"hero-particles/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DebugTab int

const (
	TabSimulation DebugTab = iota
	TabPerformance
	tabCount
)

var tabNames = [tabCount]string{"Simulation", "Performance"}

type DebugOverlay struct {
	ActiveTab  DebugTab
	ShowBounds bool

	// UI State
	fontHeight   int
	lineHeight   int
	tabHeight    int
	sidebarWidth int
	uiScale      float64

	prevLeftMouseButton bool
	clicked             bool
	mouseX, mouseY      float64

	font       rl.Font
	customFont bool

	// Performance Monitoring
	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

func NewDebugOverlay() *DebugOverlay {
	d := &DebugOverlay{
		ActiveTab:      TabSimulation,
		lastUpdateTime: time.Now(),
	}
	d.updateLayout()

	if path := utils.FindFontFile("DejaVu Sans", nil); path != "" {
		d.font = rl.LoadFontEx(path, 64, nil, 0)
		rl.SetTextureFilter(d.font.Texture, rl.FilterBilinear)
		d.customFont = true
	} else {
		d.font = rl.GetFontDefault()
	}
	runtime.ReadMemStats(&d.memStats)
	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(rl.GetScreenHeight())/1080.0)
	d.fontHeight = int(16 * scale)
	d.lineHeight = int(24 * scale)
	d.tabHeight = int(36 * scale)
	d.sidebarWidth = int(360 * scale)
	d.uiScale = scale
}

func (d *DebugOverlay) Update() {
	d.updateLayout()

	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	mPos := rl.GetMousePosition()
	d.mouseX, d.mouseY = float64(mPos.X), float64(mPos.Y)

	leftPressed := rl.IsMouseButtonDown(rl.MouseLeftButton)
	d.clicked = leftPressed && !d.prevLeftMouseButton
	d.prevLeftMouseButton = leftPressed

	if d.clicked && d.mouseY < float64(d.tabHeight) && d.mouseX < float64(d.sidebarWidth) {
		tabWidth := float64(d.sidebarWidth) / float64(tabCount)
		d.ActiveTab = DebugTab(int(d.mouseX / tabWidth))
	}

	toggle := d.getBoundsToggleRect()
	if d.clicked && rl.CheckCollisionPointRec(mPos, toggle) {
		d.ShowBounds = !d.ShowBounds
	}
}

// Draw paints the sidebar and, when enabled, the world bounds on top of the presented frame.
func (d *DebugOverlay) Draw(r *engine2D.Renderer) {
	if d.ShowBounds {
		d.drawWorldBounds(r)
		d.drawInfluenceRing(r)
	}

	sh := int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(d.sidebarWidth), sh, rl.NewColor(0, 0, 0, 200))

	d.drawTabs()
	d.drawBoundsToggle()

	y := int32(d.tabHeight + d.lineHeight + 10)
	for _, line := range d.lines(r) {
		d.DrawText(line, 10, y, int32(d.fontHeight), rl.White)
		y += int32(d.lineHeight)
	}
}

func (d *DebugOverlay) lines(r *engine2D.Renderer) []string {
	switch d.ActiveTab {
	case TabPerformance:
		return []string{
			fmt.Sprintf("FPS: %.1f", d.fps),
			fmt.Sprintf("Frame: %.2f ms", float64(rl.GetFrameTime())*1000),
			fmt.Sprintf("Heap: %.1f MB", float64(d.memStats.HeapAlloc)/1024/1024),
			fmt.Sprintf("Sys: %.1f MB", float64(d.memStats.Sys)/1024/1024),
			fmt.Sprintf("GC cycles: %d", d.memStats.NumGC),
			fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
		}
	default:
		s := r.Stats()
		return []string{
			fmt.Sprintf("Text: %s", r.Controls.DisplayText()),
			fmt.Sprintf("Particles: %d", s.Particles),
			fmt.Sprintf("Dust: %d", s.Dust),
			fmt.Sprintf("Regenerations: %d", s.Regenerations),
			fmt.Sprintf("Sim time: %.2f s", s.SimTime),
			fmt.Sprintf("Pointer inside: %t", s.PointerInside),
			fmt.Sprintf("Ring angle: %.3f rad", s.Angle),
			fmt.Sprintf("Intensity: %.3f", s.Intensity),
			fmt.Sprintf("RGB offset: %.4f, %.4f", s.Offset[0], s.Offset[1]),
			fmt.Sprintf("Shape: %s  Size: %.2f", r.Controls.ParticleShape, r.Controls.ParticleSize),
			fmt.Sprintf("Density: %.0f  Spacing: %.2f", r.Controls.ParticleCount, r.Controls.TrailSpacing),
			fmt.Sprintf("Influence: %.2f", r.Controls.CursorInfluenceSize),
		}
	}
}

func (d *DebugOverlay) drawTabs() {
	tabWidth := int32(d.sidebarWidth) / int32(tabCount)
	for i, name := range tabNames {
		x := int32(i) * tabWidth
		bg := rl.NewColor(40, 40, 40, 255)
		if DebugTab(i) == d.ActiveTab {
			bg = rl.NewColor(80, 80, 80, 255)
		}
		rl.DrawRectangle(x, 0, tabWidth, int32(d.tabHeight), bg)
		d.DrawText(name, x+10, int32(d.tabHeight-d.fontHeight)/2, int32(d.fontHeight), rl.White)
	}
}

func (d *DebugOverlay) DrawText(text string, x, y, size int32, color rl.Color) {
	rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (d *DebugOverlay) Unload() {
	if d.customFont {
		rl.UnloadFont(d.font)
		d.customFont = false
	}
}
