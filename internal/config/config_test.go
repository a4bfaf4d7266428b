package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsLoad(t *testing.T) {
	v := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg, err := Load(v, DefaultControls())
	require.NoError(t, err)

	assert.Equal(t, DefaultControls(), cfg.Controls)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 60, cfg.Window.TargetFPS)
	assert.Equal(t, ".cursor/debug.log", cfg.DebugLog.Path)
	assert.Equal(t, []string{"assets/fonts"}, cfg.FontDirs)
}

func TestLoadFromFileClampsAndRetains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.yaml")
	body := `
controls:
  text_line1: HELLO
  particle_count: 500
  trail_spacing: 0.1
  cursor_influence_size: 9
  color: "not-a-color"
  gradient_start: "00ff00"
  particle_shape: hexagon
  line_mode: 3
window:
  width: 640
  height: 480
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	v := NewViper(path)
	require.NoError(t, ReadConfig(v))
	prev := DefaultControls()
	prev.Color = "#123456"

	cfg, err := Load(v, prev)
	require.NoError(t, err)

	c := cfg.Controls
	assert.Equal(t, "HELLO", c.TextLine1)
	assert.Equal(t, 100.0, c.ParticleCount)
	assert.Equal(t, 0.5, c.TrailSpacing)
	assert.Equal(t, 4.0, c.CursorInfluenceSize)
	assert.Equal(t, "#123456", c.Color, "malformed color keeps the prior value")
	assert.Equal(t, "00ff00", c.GradientStart)
	assert.Equal(t, ShapeCircle, c.ParticleShape)
	assert.Equal(t, 2, c.LineMode)
	assert.Equal(t, 640, cfg.Window.Width)
}

func TestReadConfigMissingFileIsNotAnError(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	v := NewViper("")
	assert.NoError(t, ReadConfig(v))
}

func TestSanitizeNaNKeepsPrior(t *testing.T) {
	prev := DefaultControls()
	c := prev
	c.LineGap = math.NaN()
	c.ParticleSize = math.NaN()
	c.RGBShiftAngle = math.Inf(1)
	c.Sanitize(prev)

	assert.Equal(t, prev.LineGap, c.LineGap)
	assert.Equal(t, prev.ParticleSize, c.ParticleSize)
	assert.Equal(t, prev.RGBShiftAngle, c.RGBShiftAngle)
}

func TestLines(t *testing.T) {
	c := DefaultControls()
	c.TextLine1 = ""
	c.TextLine2 = ""
	assert.Equal(t, []string{DefaultTextLine1, DefaultTextLine2}, c.Lines())

	c.LineMode = 1
	c.TextLine1 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123"
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0", lines[0])
	assert.Equal(t, lines[0], c.DisplayText())
}

func TestSamplerKeyChangesWithText(t *testing.T) {
	a := DefaultControls()
	b := a
	assert.Equal(t, a.SamplerKey(), b.SamplerKey())

	b.ParticleSize = 0.3
	assert.Equal(t, a.SamplerKey(), b.SamplerKey(), "size does not affect sampling")

	b.TextLine2 = "STUDIO"
	assert.NotEqual(t, a.SamplerKey(), b.SamplerKey())
}

func TestNextShape(t *testing.T) {
	c := DefaultControls()
	c.NextShape()
	assert.Equal(t, ShapeSquare, c.ParticleShape)
	c.NextShape()
	assert.Equal(t, ShapeTriangle, c.ParticleShape)
	c.NextShape()
	assert.Equal(t, ShapeCircle, c.ParticleShape)
}

func TestParseColor(t *testing.T) {
	col, ok := ParseColor("#FF0000")
	require.True(t, ok)
	assert.InDelta(t, 1.0, col.R, 1e-9)
	assert.InDelta(t, 0.0, col.G, 1e-9)

	_, ok = ParseColor("b56dff")
	assert.True(t, ok)

	for _, bad := range []string{"", "#12", "#gggggg", "rgba(0,0,0,1)"} {
		_, ok := ParseColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestReloaderKeepsLatest(t *testing.T) {
	r := &Reloader{updates: make(chan Controls, 1)}

	first := DefaultControls()
	first.TextLine1 = "ONE"
	second := DefaultControls()
	second.TextLine1 = "TWO"

	r.offer(first)
	r.offer(second)

	got, ok := r.Pending()
	require.True(t, ok)
	assert.Equal(t, "TWO", got.TextLine1)

	_, ok = r.Pending()
	assert.False(t, ok)
}
