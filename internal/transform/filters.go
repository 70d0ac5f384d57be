// Filter operations: grayscale, blur, edge detection
package transform

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Grayscale collapses the image to luminance. The result keeps three
// channels (gray replicated into BGR) so every later operation still sees a
// color image, matching common editor behavior.
type Grayscale struct{}

func NewGrayscale() *Grayscale {
	return &Grayscale{}
}

func (g *Grayscale) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(input, &gray, gocv.ColorBGRToGray)

	output := gocv.NewMat()
	gocv.CvtColor(gray, &output, gocv.ColorGrayToBGR)
	return output, nil
}

func (g *Grayscale) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (g *Grayscale) GetName() string {
	return "Grayscale"
}

func (g *Grayscale) GetDescription() string {
	return "Collapse channels to a single luminance channel"
}

func (g *Grayscale) Validate(params map[string]interface{}) error {
	return nil
}

func (g *Grayscale) GetParameterInfo() []ParameterInfo {
	return nil
}

// Blur applies Gaussian smoothing. Radius 0 is the identity.
type Blur struct{}

func NewBlur() *Blur {
	return &Blur{}
}

func (b *Blur) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	radius, _ := intParam(params, "radius", 2)
	if radius == 0 {
		return input.Clone(), nil
	}

	// Kernel size must be odd.
	kernel := 2*radius + 1

	output := gocv.NewMat()
	gocv.GaussianBlur(input, &output, image.Pt(kernel, kernel), 0, 0, gocv.BorderDefault)
	return output, nil
}

func (b *Blur) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"radius": 2,
	}
}

func (b *Blur) GetName() string {
	return "Blur"
}

func (b *Blur) GetDescription() string {
	return "Gaussian smoothing; radius 0 leaves the image unchanged"
}

func (b *Blur) Validate(params map[string]interface{}) error {
	if radius, ok := intParam(params, "radius", 2); ok {
		if radius < 0 || radius > 25 {
			return fmt.Errorf("radius must be between 0 and 25")
		}
	}
	return nil
}

func (b *Blur) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "radius",
			Type:        "int",
			Min:         0,
			Max:         25,
			Default:     2,
			Description: "Blur radius (kernel = 2*radius+1)",
		},
	}
}

// EdgeDetect produces a Canny edge map. The upper threshold is derived from
// the lower one.
type EdgeDetect struct{}

func NewEdgeDetect() *EdgeDetect {
	return &EdgeDetect{}
}

func (e *EdgeDetect) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	threshold, _ := intParam(params, "threshold", 50)
	upper := threshold * 3
	if upper > 255 {
		upper = 255
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(input, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, float32(threshold), float32(upper))

	output := gocv.NewMat()
	gocv.CvtColor(edges, &output, gocv.ColorGrayToBGR)
	return output, nil
}

func (e *EdgeDetect) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"threshold": 50,
	}
}

func (e *EdgeDetect) GetName() string {
	return "Edge Detect"
}

func (e *EdgeDetect) GetDescription() string {
	return "Canny edge map with derived upper threshold"
}

func (e *EdgeDetect) Validate(params map[string]interface{}) error {
	if threshold, ok := intParam(params, "threshold", 50); ok {
		if threshold < 1 || threshold > 255 {
			return fmt.Errorf("threshold must be between 1 and 255")
		}
	}
	return nil
}

func (e *EdgeDetect) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "threshold",
			Type:        "int",
			Min:         10,
			Max:         150,
			Default:     50,
			Description: "Lower Canny threshold (upper = 3x, capped at 255)",
		},
	}
}
