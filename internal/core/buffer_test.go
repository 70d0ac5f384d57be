package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageBufferValidation(t *testing.T) {
	tests := []struct {
		name     string
		pixels   int
		width    int
		height   int
		channels int
		wantErr  bool
	}{
		{"valid BGR", 2 * 2 * 3, 2, 2, 3, false},
		{"valid gray", 2 * 2, 2, 2, 1, false},
		{"valid BGRA", 2 * 2 * 4, 2, 2, 4, false},
		{"zero width", 0, 0, 2, 3, true},
		{"negative height", 0, 2, -1, 3, true},
		{"two channels", 2 * 2 * 2, 2, 2, 2, true},
		{"size mismatch", 5, 2, 2, 3, true},
		{"too large", 3, 20000, 1, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewImageBuffer(make([]byte, tc.pixels), tc.width, tc.height, tc.channels)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImageBufferImmutability(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	buf, err := NewImageBuffer(src, 2, 1, 3)
	require.NoError(t, err)

	// Mutating the source slice after construction must not leak in.
	src[0] = 99
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf.Pixels())

	// Mutating an accessor copy must not leak back.
	out := buf.Pixels()
	out[1] = 99
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf.Pixels())
}

func TestImageBufferEqual(t *testing.T) {
	a, err := NewImageBuffer([]byte{1, 2, 3}, 1, 1, 3)
	require.NoError(t, err)
	b, err := NewImageBuffer([]byte{1, 2, 3}, 1, 1, 3)
	require.NoError(t, err)
	c, err := NewImageBuffer([]byte{9, 2, 3}, 1, 1, 3)
	require.NoError(t, err)
	d, err := NewImageBuffer([]byte{1, 2, 3}, 3, 1, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(ImageBuffer{}))
}

func TestImageBufferMetadata(t *testing.T) {
	buf, err := NewImageBuffer(make([]byte, 3*2*3), 3, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, buf.Width())
	assert.Equal(t, 2, buf.Height())
	assert.Equal(t, 3, buf.Channels())
	assert.Equal(t, ColorSpaceBGR, buf.ColorSpace())
	assert.False(t, buf.IsZero())
	assert.Equal(t, "3x2 BGR", buf.String())

	assert.True(t, ImageBuffer{}.IsZero())
}

func TestToImageBGROrder(t *testing.T) {
	// One BGR pixel: blue=10, green=20, red=30.
	buf, err := NewImageBuffer([]byte{10, 20, 30}, 1, 1, 3)
	require.NoError(t, err)

	img := buf.ToImage()
	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())

	got := img.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{R: 30, G: 20, B: 10, A: 255}, got)
}

func TestToImageGray(t *testing.T) {
	buf, err := NewImageBuffer([]byte{100, 200}, 2, 1, 1)
	require.NoError(t, err)

	img := buf.ToImage()
	assert.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, img.RGBAAt(1, 0))
}
