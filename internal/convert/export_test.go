package convert

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.UTC)

func testFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/4+y/4)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "hero-particles-2026-03-04T05-06-07-890Z.png", FileName(FormatPNG, stamp))
	assert.Equal(t, "hero-particles-2026-03-04T05-06-07-890Z.jpg", FileName(FormatJPEG, stamp))
	assert.Equal(t, "hero-particles-2026-03-04T05-06-07-890Z.rgba.lz4", FileName(FormatLZ4, stamp))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"PNG": FormatPNG, "jpg": FormatJPEG, "jpeg": FormatJPEG, "svg": FormatSVG, "lz4": FormatLZ4} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestExportPNGKeepsDimensions(t *testing.T) {
	dir := t.TempDir()
	path, err := Export(testFrame(64, 36), FormatPNG, color.Black, dir, stamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName(FormatPNG, stamp)), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 36, img.Bounds().Dy())
}

func TestExportJPEGFillsBackground(t *testing.T) {
	dir := t.TempDir()
	frame := image.NewRGBA(image.Rect(0, 0, 32, 32)) // fully transparent
	path, err := Export(frame, FormatJPEG, color.RGBA{R: 10, G: 10, B: 10, A: 255}, filepath.Join(dir, "nested"), stamp)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, g, b, _ := img.At(16, 16).RGBA()
	assert.InDelta(t, 10, r>>8, 3)
	assert.InDelta(t, 10, g>>8, 3)
	assert.InDelta(t, 10, b>>8, 3)
}

func TestExportSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSVG(&buf, testFrame(8, 4), color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 255}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="8" height="4" viewBox="0 0 8 4"`)
	assert.Contains(t, out, `fill="#0a0a0a"`)
	assert.Contains(t, out, "data:image/png;base64,")
}

func TestFrameRoundTrip(t *testing.T) {
	frames := map[string]*image.RGBA{
		"patterned": testFrame(40, 20),
		"noise":     image.NewRGBA(image.Rect(0, 0, 16, 16)),
	}
	rng := rand.New(rand.NewSource(5))
	rng.Read(frames["noise"].Pix)

	for name, img := range frames {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeFrame(&buf, img))
			assert.Equal(t, FrameMagic, buf.String()[:4])

			got, err := DecodeFrame(&buf)
			require.NoError(t, err)
			assert.Equal(t, img.Rect, got.Rect)
			assert.Equal(t, img.Pix, got.Pix)
		})
	}
}

func TestDecodeFrameRejectsGarbage(t *testing.T) {
	_, err := DecodeFrame(strings.NewReader("nope"))
	assert.Error(t, err)

	_, err = DecodeFrame(strings.NewReader("HPRF\x02\x00\x00\x00\x02\x00\x00\x00\x05\x00\x00\x00"))
	assert.Error(t, err)
}

func TestExportRejectsEmptyFrame(t *testing.T) {
	_, err := Export(image.NewRGBA(image.Rect(0, 0, 0, 0)), FormatPNG, color.Black, t.TempDir(), stamp)
	assert.Error(t, err)
}

func TestExportSVGTransparentBackground(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSVG(&buf, testFrame(2, 2), color.NRGBA{R: 255, A: 0}))
	assert.Contains(t, buf.String(), `fill="#000000"`)

	buf.Reset()
	require.NoError(t, EncodeSVG(&buf, testFrame(2, 2), nil))
	assert.Contains(t, buf.String(), `fill="#000000"`)
}

func TestSVGExportWritesFile(t *testing.T) {
	path, err := Export(testFrame(8, 4), FormatSVG, color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 255}, t.TempDir(), stamp)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fill="#0a0a0a"`)
}

func TestFromPixelsLargeFrame(t *testing.T) {
	const w, h = 3840, 2160
	pix := make([]color.RGBA, w*h)
	pix[0] = color.RGBA{R: 1, G: 2, B: 3, A: 4}
	pix[len(pix)-1] = color.RGBA{R: 9, G: 8, B: 7, A: 255}

	img := FromPixels(pix, w, h)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 4}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 9, G: 8, B: 7, A: 255}, img.RGBAAt(w-1, h-1))

	// The result owns its pixels.
	pix[0] = color.RGBA{}
	assert.Equal(t, uint8(1), img.Pix[0])
}

func TestFromPixelsRejectsShortInput(t *testing.T) {
	assert.Nil(t, FromPixels(make([]color.RGBA, 3), 2, 2))
	assert.Nil(t, FromPixels(nil, 0, 0))
}
