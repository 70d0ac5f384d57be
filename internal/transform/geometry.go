// Geometric operations: rotate, flip, resize
package transform

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
)

// Rotate turns the image by a right-angle multiple. 90 and 270 swap the
// image dimensions losslessly.
type Rotate struct{}

func NewRotate() *Rotate {
	return &Rotate{}
}

func (r *Rotate) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	angle, _ := intParam(params, "angle", 90)

	var code gocv.RotateFlag
	switch angle {
	case 90:
		code = gocv.Rotate90Clockwise
	case 180:
		code = gocv.Rotate180Clockwise
	case 270:
		code = gocv.Rotate90CounterClockwise
	default:
		return gocv.NewMat(), fmt.Errorf("angle must be 90, 180, or 270")
	}

	output := gocv.NewMat()
	gocv.Rotate(input, &output, code)
	return output, nil
}

func (r *Rotate) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"angle": 90,
	}
}

func (r *Rotate) GetName() string {
	return "Rotate"
}

func (r *Rotate) GetDescription() string {
	return "Right-angle rotation; 90 and 270 swap width and height"
}

func (r *Rotate) Validate(params map[string]interface{}) error {
	if angle, ok := intParam(params, "angle", 90); ok {
		if angle != 90 && angle != 180 && angle != 270 {
			return fmt.Errorf("angle must be 90, 180, or 270")
		}
	}
	return nil
}

func (r *Rotate) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "angle",
			Type:        "enum",
			Default:     90,
			Description: "Rotation angle in degrees, clockwise",
			Options:     []string{"90", "180", "270"},
		},
	}
}

// Flip mirrors the image along one axis.
type Flip struct {
	horizontal bool
}

func NewFlip(horizontal bool) *Flip {
	return &Flip{horizontal: horizontal}
}

func (f *Flip) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	// OpenCV flip codes: 1 = around the vertical axis, 0 = horizontal axis.
	code := 0
	if f.horizontal {
		code = 1
	}

	output := gocv.NewMat()
	gocv.Flip(input, &output, code)
	return output, nil
}

func (f *Flip) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (f *Flip) GetName() string {
	if f.horizontal {
		return "Flip Horizontal"
	}
	return "Flip Vertical"
}

func (f *Flip) GetDescription() string {
	if f.horizontal {
		return "Mirror the image left to right"
	}
	return "Mirror the image top to bottom"
}

func (f *Flip) Validate(params map[string]interface{}) error {
	return nil
}

func (f *Flip) GetParameterInfo() []ParameterInfo {
	return nil
}

// Resize scales both dimensions by a positive factor. Results are clamped
// to at least 1x1; downscales use area interpolation, upscales linear.
type Resize struct{}

func NewResize() *Resize {
	return &Resize{}
}

func (r *Resize) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	scale, _ := floatParam(params, "scale", 1.0)
	if scale <= 0 {
		return gocv.NewMat(), fmt.Errorf("scale must be positive")
	}

	width := int(math.Round(float64(input.Cols()) * scale))
	height := int(math.Round(float64(input.Rows()) * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	interpolation := gocv.InterpolationLinear
	if scale < 1.0 {
		interpolation = gocv.InterpolationArea
	}

	output := gocv.NewMat()
	gocv.Resize(input, &output, image.Pt(width, height), 0, 0, interpolation)
	return output, nil
}

func (r *Resize) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"scale": 1.0,
	}
}

func (r *Resize) GetName() string {
	return "Resize"
}

func (r *Resize) GetDescription() string {
	return "Scale both dimensions by a factor"
}

func (r *Resize) Validate(params map[string]interface{}) error {
	if scale, ok := floatParam(params, "scale", 1.0); ok {
		if scale <= 0 {
			return fmt.Errorf("scale must be positive")
		}
	}
	return nil
}

func (r *Resize) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "scale",
			Type:        "float",
			Min:         0.1,
			Max:         2.0,
			Default:     1.0,
			Description: "Scale factor applied to width and height",
		},
	}
}
