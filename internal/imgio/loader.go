// Image file loading and saving
package imgio

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"interactive-image-editor/internal/core"
)

// Loader decodes image files into immutable buffers and encodes buffers
// back to disk.
type Loader struct {
	logger *logrus.Logger
}

func NewLoader(logger *logrus.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadImage decodes the file at path into an ImageBuffer.
func (l *Loader) LoadImage(path string) (core.ImageBuffer, error) {
	l.logger.WithField("path", path).Debug("Loading image")

	if !isSupportedFormat(path) {
		return core.ImageBuffer{}, &core.DecodeError{Path: path, Err: fmt.Errorf("unsupported image format")}
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return core.ImageBuffer{}, &core.DecodeError{Path: path, Err: fmt.Errorf("file missing, corrupt, or not an image")}
	}

	buf, err := core.NewImageBuffer(mat.ToBytes(), mat.Cols(), mat.Rows(), mat.Channels())
	if err != nil {
		return core.ImageBuffer{}, &core.DecodeError{Path: path, Err: err}
	}

	l.logger.WithFields(logrus.Fields{
		"path":     path,
		"width":    buf.Width(),
		"height":   buf.Height(),
		"channels": buf.Channels(),
	}).Info("Image loaded")

	return buf, nil
}

// DecodeBytes decodes raw encoded image bytes into an ImageBuffer.
func (l *Loader) DecodeBytes(data []byte) (core.ImageBuffer, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return core.ImageBuffer{}, &core.DecodeError{Err: err}
	}
	defer mat.Close()
	if mat.Empty() {
		return core.ImageBuffer{}, &core.DecodeError{Err: fmt.Errorf("data is not a decodable image")}
	}

	buf, err := core.NewImageBuffer(mat.ToBytes(), mat.Cols(), mat.Rows(), mat.Channels())
	if err != nil {
		return core.ImageBuffer{}, &core.DecodeError{Err: err}
	}
	return buf, nil
}

// SaveImage encodes the buffer to the file at path; the format follows the
// extension.
func (l *Loader) SaveImage(buf core.ImageBuffer, path string) error {
	if buf.IsZero() {
		return fmt.Errorf("cannot save empty image")
	}
	if !isSupportedFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}

	var matType gocv.MatType
	switch buf.Channels() {
	case 1:
		matType = gocv.MatTypeCV8UC1
	case 3:
		matType = gocv.MatTypeCV8UC3
	case 4:
		matType = gocv.MatTypeCV8UC4
	default:
		return fmt.Errorf("unsupported channel count: %d", buf.Channels())
	}

	mat, err := gocv.NewMatFromBytes(buf.Height(), buf.Width(), matType, buf.Pixels())
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	defer mat.Close()

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to save image: %s", path)
	}

	l.logger.WithFields(logrus.Fields{
		"path":   path,
		"width":  buf.Width(),
		"height": buf.Height(),
	}).Info("Image saved")

	return nil
}

// SupportedExtensions lists the file extensions the loader accepts.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff"}
}

func isSupportedFormat(path string) bool {
	ext := strings.ToLower(fileExtension(path))
	for _, supported := range SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func fileExtension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i:]
		}
		if path[i] == '/' || path[i] == '\\' {
			break
		}
	}
	return ""
}
