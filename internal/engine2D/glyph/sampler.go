package glyph

import (
	"image"
	"math"
	"math/rand"
	"strings"
	"time"

	"hero-particles/internal/utils"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	CanvasWidth  = 1200
	CanvasHeight = 420
	WorldWidth   = 2.8
	WorldHeight  = 1.1

	FallbackText = "PARTICLES"

	// Alpha above which a grid cell counts as glyph interior.
	AlphaThreshold = 70

	// Font auto-shrink schedule.
	StartFontSize   = 300
	MinFontSize     = 72
	FontSizeStep    = 12
	MaxWidthFactor  = 0.88
	MaxHeightFactor = 0.72

	ParticlesPerDensity = 65
)

// Options are the sampler inputs taken from the controls.
type Options struct {
	Text     string
	MaxLines int
	Font     string
	Density  float64 // 10..100
	Spacing  float64 // 0.5..3
	LineGap  float64 // 0.8..1.8
}

// Sampler turns text into a rest point cloud.
type Sampler struct {
	Width, Height int
	Fonts         *Fonts
	Rand          *rand.Rand
}

func NewSampler(fonts *Fonts, rng *rand.Rand) *Sampler {
	if fonts == nil {
		fonts = NewFonts(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Fonts:  fonts,
		Rand:   rng,
	}
}

// Budget is the particle cap for a density control value.
func Budget(density float64) int {
	return int(math.Round(clamp(density, 10, 100) * ParticlesPerDensity))
}

// SampleStep maps the spacing control to a pixel stride; larger spacing samples sparser.
func SampleStep(spacing float64) int {
	spacing = clamp(spacing, 0.5, 3)
	return max(2, int(math.Round(2+spacing*2.5)))
}

// SanitizeLines splits text into at most maxLines trimmed, non-empty lines.
func SanitizeLines(text string, maxLines int) []string {
	if maxLines < 1 {
		maxLines = 1
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))

	var lines []string
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, line)
			if len(lines) == maxLines {
				break
			}
		}
	}
	if len(lines) == 0 {
		return []string{FallbackText}
	}
	return lines
}

// Sample produces up to Budget(opts.Density) points (x, y, z triples) inside the glyph silhouette.
// It returns an empty slice when nothing can be rasterized.
func (s *Sampler) Sample(opts Options) []float32 {
	lines := SanitizeLines(opts.Text, opts.MaxLines)

	mask := s.Rasterize(lines, opts.Font, opts.LineGap)
	if mask == nil {
		return []float32{}
	}

	candidates := Candidates(mask, SampleStep(opts.Spacing))
	points := s.Pick(candidates, Budget(opts.Density))
	utils.Debug("Glyph: %d candidates, %d points (lines=%d)", len(candidates), len(points)/3, len(lines))
	return points
}

// Rasterize draws the lines centered on an alpha mask, shrinking the font until the block fits.
// A nil mask means no drawing surface could be set up.
func (s *Sampler) Rasterize(lines []string, family string, lineGapControl float64) *image.Alpha {
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}

	otf, err := s.Fonts.Resolve(family)
	if err != nil {
		utils.Warn("Glyph: no usable font for %q: %v", family, err)
		return nil
	}

	lineGap := clamp(lineGapControl, 0.8, 1.8)
	w, h := float64(s.Width), float64(s.Height)

	fontSize := float64(StartFontSize)
	face, err := newFace(otf, fontSize)
	if err != nil {
		utils.Warn("Glyph: face setup failed: %v", err)
		return nil
	}

	for (maxLineWidth(face, lines) > w*MaxWidthFactor || float64(len(lines))*fontSize*lineGap > h*MaxHeightFactor) &&
		fontSize > MinFontSize {
		fontSize -= FontSizeStep
		face.Close()
		face, err = newFace(otf, fontSize)
		if err != nil {
			utils.Warn("Glyph: face setup failed at %.0fpx: %v", fontSize, err)
			return nil
		}
	}
	defer face.Close()

	mask := image.NewAlpha(image.Rect(0, 0, s.Width, s.Height))
	drawer := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face}

	metrics := face.Metrics()
	middle := float64(metrics.Ascent-metrics.Descent) / 64 / 2

	lineHeight := fontSize * lineGap
	blockHeight := float64(len(lines)) * lineHeight
	startY := h/2 - blockHeight/2 + lineHeight/2 + fontSize*0.05

	for i, line := range lines {
		width := float64(font.MeasureString(face, line)) / 64
		centerY := startY + float64(i)*lineHeight
		drawer.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round((w/2 - width/2) * 64)),
			Y: fixed.Int26_6(math.Round((centerY + middle) * 64)),
		}
		drawer.DrawString(line)
	}

	return mask
}

// Candidates scans the mask on a step-sized grid and returns cells whose alpha exceeds the threshold.
func Candidates(mask *image.Alpha, step int) []image.Point {
	if mask == nil {
		return nil
	}
	if step < 1 {
		step = 1
	}
	b := mask.Bounds()
	var out []image.Point
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			if mask.AlphaAt(x, y).A > AlphaThreshold {
				out = append(out, image.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Pick shuffles the candidates and maps the first min(len, budget) into world space.
func (s *Sampler) Pick(candidates []image.Point, budget int) []float32 {
	if len(candidates) == 0 || budget <= 0 {
		return []float32{}
	}

	s.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	take := min(len(candidates), budget)
	points := make([]float32, take*3)
	w, h := float64(s.Width), float64(s.Height)
	for i := 0; i < take; i++ {
		p := candidates[i]
		nx := float64(p.X)/w - 0.5
		ny := 0.5 - float64(p.Y)/h
		points[i*3] = float32(nx * WorldWidth)
		points[i*3+1] = float32(ny * WorldHeight)
		points[i*3+2] = 0
	}
	return points
}

func newFace(otf *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func maxLineWidth(face font.Face, lines []string) float64 {
	widest := 0.0
	for _, line := range lines {
		widest = math.Max(widest, float64(font.MeasureString(face, line))/64)
	}
	return widest
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
