package convert

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hero-particles/internal/utils"

	"github.com/lucasb-eyer/go-colorful"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
	FormatLZ4  Format = "lz4"
)

const JPEGQuality = 96

var Formats = []Format{FormatPNG, FormatJPEG, FormatSVG, FormatLZ4}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "svg":
		return FormatSVG, nil
	case "lz4", "raw":
		return FormatLZ4, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatLZ4:
		return "rgba.lz4"
	}
	return string(f)
}

// FileName builds hero-particles-<ISO timestamp>.<ext> with ':' and '.' in the stamp replaced by '-'.
func FileName(f Format, now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "hero-particles-" + stamp + "." + f.Ext()
}

// Export encodes a captured frame and writes it into dir. It returns the written path.
func Export(img image.Image, format Format, background color.Color, dir string, now time.Time) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("export %s: empty frame", format)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, Flatten(img, background), &jpeg.Options{Quality: JPEGQuality})
	case FormatSVG:
		err = EncodeSVG(&buf, img, background)
	case FormatLZ4:
		err = EncodeFrame(&buf, img)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", format, err)
	}

	path := filepath.Join(dir, FileName(format, now))
	if err := utils.EnsureDir(path); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	utils.Info("Export: wrote %s (%d bytes)", path, buf.Len())
	return path, nil
}

// Flatten composites img over an opaque background.
func Flatten(img image.Image, background color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(opaque(background)), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// EncodeSVG wraps the frame as a PNG data URI over a background rect.
func EncodeSVG(buf *bytes.Buffer, img image.Image, background color.Color) error {
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	fill, ok := colorful.MakeColor(opaque(background))
	if !ok {
		fill = colorful.Color{}
	}

	fmt.Fprintf(buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", w, h, w, h)
	fmt.Fprintf(buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\" />\n", fill.Hex())
	fmt.Fprintf(buf, "  <image href=\"data:image/png;base64,%s\" x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" />\n",
		base64.StdEncoding.EncodeToString(pngBuf.Bytes()), w, h)
	fmt.Fprintf(buf, "</svg>")
	return nil
}

func opaque(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	r, g, b, _ := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}
