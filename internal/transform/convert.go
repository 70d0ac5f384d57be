// Conversion between immutable buffers and OpenCV mats
package transform

import (
	"fmt"

	"gocv.io/x/gocv"

	"interactive-image-editor/internal/core"
)

func matFromBuffer(buf core.ImageBuffer) (gocv.Mat, error) {
	if buf.IsZero() {
		return gocv.NewMat(), fmt.Errorf("empty image buffer")
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
		return gocv.NewMat(), fmt.Errorf("unsupported channel count: %d", buf.Channels())
	}

	return gocv.NewMatFromBytes(buf.Height(), buf.Width(), matType, buf.Pixels())
}

func bufferFromMat(mat gocv.Mat) (core.ImageBuffer, error) {
	if mat.Empty() {
		return core.ImageBuffer{}, fmt.Errorf("operation produced an empty image")
	}

	return core.NewImageBuffer(mat.ToBytes(), mat.Cols(), mat.Rows(), mat.Channels())
}
