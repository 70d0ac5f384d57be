// Operation registry and the transform library boundary
package transform

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"interactive-image-editor/internal/core"
)

// Operation defines the interface for image operations
type Operation interface {
	Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error)
	GetDefaultParams() map[string]interface{}
	GetName() string
	GetDescription() string
	Validate(params map[string]interface{}) error
	GetParameterInfo() []ParameterInfo
}

// ParameterInfo describes a parameter for UI generation
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "int", "float", "enum"
	Min         interface{} `json:"min,omitempty"`
	Max         interface{} `json:"max,omitempty"`
	Default     interface{} `json:"default"`
	Description string      `json:"description"`
	Options     []string    `json:"options,omitempty"` // For enum type
}

var operations = make(map[string]Operation)

func Register(name string, operation Operation) {
	operations[name] = operation
}

func Get(name string) (Operation, bool) {
	operation, exists := operations[name]
	return operation, exists
}

func IsValidOperation(name string) bool {
	_, exists := operations[name]
	return exists
}

func ValidateParameters(name string, params map[string]interface{}) error {
	operation, exists := operations[name]
	if !exists {
		return fmt.Errorf("operation not found: %s", name)
	}
	return operation.Validate(params)
}

func Names() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	return names
}

// Recognized operation names.
const (
	OpGrayscale      = "grayscale"
	OpBlur           = "blur"
	OpEdgeDetect     = "edge_detect"
	OpBrightness     = "brightness"
	OpContrast       = "contrast"
	OpRotate         = "rotate"
	OpFlipHorizontal = "flip_horizontal"
	OpFlipVertical   = "flip_vertical"
	OpResize         = "resize"
)

func init() {
	Register(OpGrayscale, NewGrayscale())
	Register(OpBlur, NewBlur())
	Register(OpEdgeDetect, NewEdgeDetect())
	Register(OpBrightness, NewBrightness())
	Register(OpContrast, NewContrast())
	Register(OpRotate, NewRotate())
	Register(OpFlipHorizontal, NewFlip(true))
	Register(OpFlipVertical, NewFlip(false))
	Register(OpResize, NewResize())
}

// Library adapts the registered operations to the history engine's
// Transformer boundary: validate first, then convert, apply, convert back.
// Validation failures surface before any pixel work so a failed Apply can
// never leave a half-updated image behind.
type Library struct {
	logger *logrus.Logger
}

func NewLibrary(logger *logrus.Logger) *Library {
	return &Library{logger: logger}
}

func (l *Library) Transform(buf core.ImageBuffer, op string, params map[string]interface{}) (core.ImageBuffer, error) {
	operation, exists := Get(op)
	if !exists {
		return core.ImageBuffer{}, &core.TransformError{Op: op, Reason: "unknown operation"}
	}

	if err := operation.Validate(params); err != nil {
		return core.ImageBuffer{}, &core.TransformError{Op: op, Reason: err.Error()}
	}

	input, err := matFromBuffer(buf)
	if err != nil {
		return core.ImageBuffer{}, &core.TransformError{Op: op, Reason: err.Error()}
	}
	defer input.Close()

	output, err := operation.Apply(input, params)
	if err != nil {
		return core.ImageBuffer{}, &core.TransformError{Op: op, Reason: err.Error()}
	}
	defer output.Close()

	result, err := bufferFromMat(output)
	if err != nil {
		return core.ImageBuffer{}, &core.TransformError{Op: op, Reason: err.Error()}
	}

	l.logger.WithFields(logrus.Fields{
		"op":     op,
		"width":  result.Width(),
		"height": result.Height(),
	}).Debug("Transform applied")

	return result, nil
}
