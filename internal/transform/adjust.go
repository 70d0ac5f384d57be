// Pixel value adjustments: brightness and contrast
package transform

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Brightness shifts every pixel by a signed delta, clamped to the valid
// range.
type Brightness struct{}

func NewBrightness() *Brightness {
	return &Brightness{}
}

func (b *Brightness) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	delta, _ := intParam(params, "delta", 0)

	output := gocv.NewMat()
	input.ConvertToWithParams(&output, input.Type(), 1.0, float32(delta))
	return output, nil
}

func (b *Brightness) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"delta": 0,
	}
}

func (b *Brightness) GetName() string {
	return "Brightness"
}

func (b *Brightness) GetDescription() string {
	return "Additive pixel adjustment, clamped to the valid range"
}

func (b *Brightness) Validate(params map[string]interface{}) error {
	if delta, ok := intParam(params, "delta", 0); ok {
		if delta < -100 || delta > 100 {
			return fmt.Errorf("delta must be between -100 and 100")
		}
	}
	return nil
}

func (b *Brightness) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "delta",
			Type:        "int",
			Min:         -100,
			Max:         100,
			Default:     0,
			Description: "Brightness shift added to every pixel",
		},
	}
}

// Contrast scales pixel values by a positive factor, clamped to the valid
// range.
type Contrast struct{}

func NewContrast() *Contrast {
	return &Contrast{}
}

func (c *Contrast) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	factor, _ := floatParam(params, "factor", 1.0)

	output := gocv.NewMat()
	input.ConvertToWithParams(&output, input.Type(), float32(factor), 0)
	return output, nil
}

func (c *Contrast) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"factor": 1.0,
	}
}

func (c *Contrast) GetName() string {
	return "Contrast"
}

func (c *Contrast) GetDescription() string {
	return "Multiplicative pixel adjustment, clamped to the valid range"
}

func (c *Contrast) Validate(params map[string]interface{}) error {
	if factor, ok := floatParam(params, "factor", 1.0); ok {
		if factor <= 0 {
			return fmt.Errorf("factor must be positive")
		}
	}
	return nil
}

func (c *Contrast) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "factor",
			Type:        "float",
			Min:         0.5,
			Max:         3.0,
			Default:     1.0,
			Description: "Contrast multiplier applied to every pixel",
		},
	}
}
