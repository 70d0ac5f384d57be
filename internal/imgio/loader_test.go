package imgio

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interactive-image-editor/internal/core"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"scan.png", true},
		{"scan.bmp", true},
		{"scan.tif", true},
		{"scan.tiff", true},
		{"anim.gif", false},
		{"doc.pdf", false},
		{"noext", false},
		{"dir.with.dots/noext", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, isSupportedFormat(tc.path), "path %q", tc.path)
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".png", fileExtension("a/b/c.png"))
	assert.Equal(t, ".jpeg", fileExtension("photo.old.jpeg"))
	assert.Equal(t, "", fileExtension("a.dir/file"))
	assert.Equal(t, "", fileExtension(""))
}

func TestLoadImageRejectsUnsupportedFormat(t *testing.T) {
	loader := NewLoader(testLogger())

	_, err := loader.LoadImage("notes.txt")
	require.Error(t, err)

	var decodeErr *core.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "notes.txt", decodeErr.Path)
}

func TestSaveImageRejectsEmptyBuffer(t *testing.T) {
	loader := NewLoader(testLogger())

	err := loader.SaveImage(core.ImageBuffer{}, "out.png")
	assert.Error(t, err)
}
