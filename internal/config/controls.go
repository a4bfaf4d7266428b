package config

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ControlsVersion is bumped whenever a field changes meaning.
const ControlsVersion = 1

const (
	MaxLineRunes = 27

	DefaultTextLine1 = "PARTICLES"
	DefaultTextLine2 = "SAN JOSE"
	DefaultFont      = "Inter, Arial, Helvetica, sans-serif"
)

type ParticleShape string

const (
	ShapeCircle   ParticleShape = "circle"
	ShapeSquare   ParticleShape = "square"
	ShapeTriangle ParticleShape = "triangle"
)

// Shapes lists the valid shapes in cycling order.
var Shapes = []ParticleShape{ShapeCircle, ShapeSquare, ShapeTriangle}

// Controls is the user-adjustable parameter set consumed by the sampler, the simulator and the renderer.
type Controls struct {
	Version int `mapstructure:"version"`

	TextLine1 string  `mapstructure:"text_line1"`
	TextLine2 string  `mapstructure:"text_line2"`
	LineMode  int     `mapstructure:"line_mode"`
	Font      string  `mapstructure:"font"`
	LineGap   float64 `mapstructure:"line_gap"`

	ParticleCount       float64       `mapstructure:"particle_count"`
	TrailSpacing        float64       `mapstructure:"trail_spacing"`
	ParticleSize        float64       `mapstructure:"particle_size"`
	CursorInfluenceSize float64       `mapstructure:"cursor_influence_size"`
	ParticleShape       ParticleShape `mapstructure:"particle_shape"`

	GradientEnabled bool   `mapstructure:"gradient_enabled"`
	Color           string `mapstructure:"color"`
	GradientStart   string `mapstructure:"gradient_start"`
	GradientEnd     string `mapstructure:"gradient_end"`

	BackgroundColor       string `mapstructure:"background_color"`
	BackgroundGridEnabled bool   `mapstructure:"background_grid_enabled"`

	RGBShiftIntensity float64 `mapstructure:"rgb_shift_intensity"`
	RGBShiftAngle     float64 `mapstructure:"rgb_shift_angle"`
}

func DefaultControls() Controls {
	return Controls{
		Version:               ControlsVersion,
		TextLine1:             "NIKA",
		TextLine2:             "AGENCY",
		LineMode:              2,
		Font:                  DefaultFont,
		LineGap:               0.8,
		ParticleCount:         78,
		TrailSpacing:          0.5,
		ParticleSize:          1.15,
		CursorInfluenceSize:   3,
		ParticleShape:         ShapeCircle,
		GradientEnabled:       false,
		Color:                 "#ffffff",
		GradientStart:         "#5f7cff",
		GradientEnd:           "#b56dff",
		BackgroundColor:       "#0a0a0a",
		BackgroundGridEnabled: true,
		RGBShiftIntensity:     0.012,
		RGBShiftAngle:         0,
	}
}

// Sanitize clamps numeric controls into range and replaces malformed values with the
// corresponding field of prev.
func (c *Controls) Sanitize(prev Controls) {
	c.Version = ControlsVersion

	c.LineGap = clampOr(c.LineGap, 0.8, 1.8, prev.LineGap)
	c.ParticleCount = clampOr(c.ParticleCount, 10, 100, prev.ParticleCount)
	c.TrailSpacing = clampOr(c.TrailSpacing, 0.5, 3, prev.TrailSpacing)
	c.ParticleSize = clampOr(c.ParticleSize, 0.1, 1.2, prev.ParticleSize)
	c.CursorInfluenceSize = clampOr(c.CursorInfluenceSize, 1, 4, prev.CursorInfluenceSize)
	c.RGBShiftIntensity = clampOr(c.RGBShiftIntensity, 0, 0.05, prev.RGBShiftIntensity)
	if math.IsNaN(c.RGBShiftAngle) || math.IsInf(c.RGBShiftAngle, 0) {
		c.RGBShiftAngle = prev.RGBShiftAngle
	}

	if c.LineMode != 1 && c.LineMode != 2 {
		c.LineMode = prev.LineMode
	}
	if !validShape(c.ParticleShape) {
		c.ParticleShape = prev.ParticleShape
	}

	for _, f := range []struct {
		value *string
		prev  string
	}{
		{&c.Color, prev.Color},
		{&c.GradientStart, prev.GradientStart},
		{&c.GradientEnd, prev.GradientEnd},
		{&c.BackgroundColor, prev.BackgroundColor},
	} {
		if _, ok := ParseColor(*f.value); !ok {
			*f.value = f.prev
		}
	}

	if strings.TrimSpace(c.Font) == "" {
		c.Font = prev.Font
	}
}

// Lines returns the display lines: each truncated, empty ones replaced by their fallbacks.
func (c *Controls) Lines() []string {
	line1 := truncateRunes(c.TextLine1, MaxLineRunes)
	if line1 == "" {
		line1 = DefaultTextLine1
	}
	if c.LineMode != 2 {
		return []string{line1}
	}
	line2 := truncateRunes(c.TextLine2, MaxLineRunes)
	if line2 == "" {
		line2 = DefaultTextLine2
	}
	return []string{line1, line2}
}

// DisplayText joins Lines the way the sampler consumes them.
func (c *Controls) DisplayText() string {
	return strings.TrimSpace(strings.Join(c.Lines(), "\n"))
}

// SamplerKey identifies the parameters the rest point cloud depends on.
type SamplerKey struct {
	Text      string
	Font      string
	Density   float64
	Spacing   float64
	LineGap   float64
	LineCount int
}

func (c *Controls) SamplerKey() SamplerKey {
	return SamplerKey{
		Text:      c.DisplayText(),
		Font:      c.Font,
		Density:   c.ParticleCount,
		Spacing:   c.TrailSpacing,
		LineGap:   c.LineGap,
		LineCount: c.LineMode,
	}
}

// NextShape cycles circle -> square -> triangle.
func (c *Controls) NextShape() {
	for i, s := range Shapes {
		if s == c.ParticleShape {
			c.ParticleShape = Shapes[(i+1)%len(Shapes)]
			return
		}
	}
	c.ParticleShape = ShapeCircle
}

// ParseColor accepts #rrggbb, rrggbb, #rgb or rgb.
func ParseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}

// MustColor parses s and falls back to fallback when s is malformed.
func MustColor(s string, fallback colorful.Color) colorful.Color {
	if col, ok := ParseColor(s); ok {
		return col
	}
	return fallback
}

func validShape(s ParticleShape) bool {
	for _, v := range Shapes {
		if v == s {
			return true
		}
	}
	return false
}

func clampOr(v, min, max, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(min, math.Min(max, v))
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
