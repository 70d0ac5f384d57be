// Immutable image snapshot used by the history engine
package core

import (
	"bytes"
	"fmt"
	"image"
)

// ColorSpace identifies the channel layout of an ImageBuffer.
type ColorSpace string

const (
	ColorSpaceGray ColorSpace = "GRAY"
	ColorSpaceBGR  ColorSpace = "BGR"
	ColorSpaceBGRA ColorSpace = "BGRA"
)

// Pixel buffers above this edge length are rejected to bound memory use.
const maxDimension = 16384

// ImageBuffer is an immutable snapshot of decoded pixel data plus metadata.
// The pixel slice is copied on construction and on every accessor, so a
// buffer can never be mutated through aliasing; history entries may share
// buffers freely.
type ImageBuffer struct {
	pixels   []byte // interleaved rows, OpenCV channel order
	width    int
	height   int
	channels int
	space    ColorSpace
}

// NewImageBuffer validates and copies pixel data into a new buffer.
// pixels must hold exactly width*height*channels bytes of interleaved rows.
func NewImageBuffer(pixels []byte, width, height, channels int) (ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return ImageBuffer{}, fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return ImageBuffer{}, fmt.Errorf("image too large: %dx%d (max edge: %d)", width, height, maxDimension)
	}

	var space ColorSpace
	switch channels {
	case 1:
		space = ColorSpaceGray
	case 3:
		space = ColorSpaceBGR
	case 4:
		space = ColorSpaceBGRA
	default:
		return ImageBuffer{}, fmt.Errorf("unsupported channel count: %d", channels)
	}

	if expected := width * height * channels; len(pixels) != expected {
		return ImageBuffer{}, fmt.Errorf("pixel data size mismatch: got %d bytes, want %d", len(pixels), expected)
	}

	owned := make([]byte, len(pixels))
	copy(owned, pixels)

	return ImageBuffer{
		pixels:   owned,
		width:    width,
		height:   height,
		channels: channels,
		space:    space,
	}, nil
}

func (b ImageBuffer) Width() int             { return b.width }
func (b ImageBuffer) Height() int            { return b.height }
func (b ImageBuffer) Channels() int          { return b.channels }
func (b ImageBuffer) ColorSpace() ColorSpace { return b.space }

// IsZero reports whether the buffer holds no pixel data.
func (b ImageBuffer) IsZero() bool {
	return b.pixels == nil
}

// Pixels returns a copy of the interleaved pixel rows.
func (b ImageBuffer) Pixels() []byte {
	out := make([]byte, len(b.pixels))
	copy(out, b.pixels)
	return out
}

// Equal reports value equality: same dimensions, layout, and pixel bytes.
func (b ImageBuffer) Equal(other ImageBuffer) bool {
	return b.width == other.width &&
		b.height == other.height &&
		b.channels == other.channels &&
		bytes.Equal(b.pixels, other.pixels)
}

// ToImage converts the buffer to an RGBA image for display.
func (b ImageBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	if b.pixels == nil {
		return img
	}

	for y := 0; y < b.height; y++ {
		src := y * b.width * b.channels
		dst := y * img.Stride
		for x := 0; x < b.width; x++ {
			var r, g, bl, a byte
			switch b.channels {
			case 1:
				v := b.pixels[src]
				r, g, bl, a = v, v, v, 255
				src++
			case 3:
				bl, g, r, a = b.pixels[src], b.pixels[src+1], b.pixels[src+2], 255
				src += 3
			case 4:
				bl, g, r, a = b.pixels[src], b.pixels[src+1], b.pixels[src+2], b.pixels[src+3]
				src += 4
			}
			img.Pix[dst] = r
			img.Pix[dst+1] = g
			img.Pix[dst+2] = bl
			img.Pix[dst+3] = a
			dst += 4
		}
	}
	return img
}

func (b ImageBuffer) String() string {
	return fmt.Sprintf("%dx%d %s", b.width, b.height, b.space)
}
