package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/pierrec/lz4/v4"
)

// FrameMagic opens a raw frame dump: magic, width, height, raw RGBA size (little endian u32),
// then a single LZ4 block. A payload as long as the raw size is stored uncompressed.
const FrameMagic = "HPRF"

const frameHeaderSize = 16

// FromPixels copies w*h row-major RGBA pixels into a Go-owned image. It returns nil when
// pix is shorter than the frame.
func FromPixels(pix []color.RGBA, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return nil
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range pix[:w*h] {
		o := i * 4
		out.Pix[o] = c.R
		out.Pix[o+1] = c.G
		out.Pix[o+2] = c.B
		out.Pix[o+3] = c.A
	}
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// EncodeFrame writes img as an LZ4 compressed RGBA frame.
func EncodeFrame(w io.Writer, img image.Image) error {
	rgba := toRGBA(img)
	raw := rgba.Pix

	block := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, block, nil)
	if err != nil {
		return fmt.Errorf("lz4 compress: %w", err)
	}
	payload := block[:n]
	if n == 0 || n >= len(raw) {
		payload = raw
	}

	header := make([]byte, frameHeaderSize)
	copy(header, FrameMagic)
	binary.LittleEndian.PutUint32(header[4:], uint32(rgba.Rect.Dx()))
	binary.LittleEndian.PutUint32(header[8:], uint32(rgba.Rect.Dy()))
	binary.LittleEndian.PutUint32(header[12:], uint32(len(raw)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// DecodeFrame reads a frame written by EncodeFrame.
func DecodeFrame(r io.Reader) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < frameHeaderSize || !bytes.Equal(data[:4], []byte(FrameMagic)) {
		return nil, fmt.Errorf("invalid frame header")
	}

	width := binary.LittleEndian.Uint32(data[4:])
	height := binary.LittleEndian.Uint32(data[8:])
	rawSize := binary.LittleEndian.Uint32(data[12:])
	if uint64(width)*uint64(height)*4 != uint64(rawSize) {
		return nil, fmt.Errorf("frame size mismatch: %dx%d vs %d bytes", width, height, rawSize)
	}

	payload := data[frameHeaderSize:]
	pix := make([]byte, rawSize)
	if uint32(len(payload)) == rawSize {
		copy(pix, payload)
	} else {
		n, err := lz4.UncompressBlock(payload, pix)
		if err != nil {
			return nil, fmt.Errorf("lz4 uncompress: %w", err)
		}
		if uint32(n) != rawSize {
			return nil, fmt.Errorf("short frame: %d of %d bytes", n, rawSize)
		}
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: int(width) * 4,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}, nil
}
