package transform

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

func TestRegistryContainsAllOperations(t *testing.T) {
	names := []string{
		OpGrayscale, OpBlur, OpEdgeDetect,
		OpBrightness, OpContrast,
		OpRotate, OpFlipHorizontal, OpFlipVertical, OpResize,
	}

	for _, name := range names {
		assert.True(t, IsValidOperation(name), "operation %q should be registered", name)
	}
	assert.Len(t, Names(), len(names))
	assert.False(t, IsValidOperation("sharpen"))
}

func TestDefaultParamsAreValid(t *testing.T) {
	for _, name := range Names() {
		operation, ok := Get(name)
		require.True(t, ok)
		assert.NoError(t, operation.Validate(operation.GetDefaultParams()),
			"defaults for %q should validate", name)
	}
}

func TestParameterValidation(t *testing.T) {
	tests := []struct {
		op      string
		params  map[string]interface{}
		wantErr bool
	}{
		{OpBlur, map[string]interface{}{"radius": 0}, false},
		{OpBlur, map[string]interface{}{"radius": 25}, false},
		{OpBlur, map[string]interface{}{"radius": -1}, true},
		{OpBlur, map[string]interface{}{"radius": 26}, true},

		{OpEdgeDetect, map[string]interface{}{"threshold": 50}, false},
		{OpEdgeDetect, map[string]interface{}{"threshold": 0}, true},
		{OpEdgeDetect, map[string]interface{}{"threshold": 256}, true},

		{OpBrightness, map[string]interface{}{"delta": -100}, false},
		{OpBrightness, map[string]interface{}{"delta": 100}, false},
		{OpBrightness, map[string]interface{}{"delta": -101}, true},
		{OpBrightness, map[string]interface{}{"delta": 101}, true},

		{OpContrast, map[string]interface{}{"factor": 0.5}, false},
		{OpContrast, map[string]interface{}{"factor": 3.0}, false},
		{OpContrast, map[string]interface{}{"factor": 0.0}, true},
		{OpContrast, map[string]interface{}{"factor": -1.0}, true},

		{OpRotate, map[string]interface{}{"angle": 90}, false},
		{OpRotate, map[string]interface{}{"angle": 180}, false},
		{OpRotate, map[string]interface{}{"angle": 270}, false},
		{OpRotate, map[string]interface{}{"angle": 45}, true},
		{OpRotate, map[string]interface{}{"angle": 0}, true},

		{OpResize, map[string]interface{}{"scale": 0.5}, false},
		{OpResize, map[string]interface{}{"scale": 2.0}, false},
		{OpResize, map[string]interface{}{"scale": 0.0}, true},
		{OpResize, map[string]interface{}{"scale": -0.5}, true},

		{OpGrayscale, nil, false},
		{OpFlipHorizontal, nil, false},
		{OpFlipVertical, nil, false},
	}

	for _, tc := range tests {
		err := ValidateParameters(tc.op, tc.params)
		if tc.wantErr {
			assert.Error(t, err, "%s with %v should fail validation", tc.op, tc.params)
		} else {
			assert.NoError(t, err, "%s with %v should pass validation", tc.op, tc.params)
		}
	}
}

func TestParamCoercion(t *testing.T) {
	// Widgets deliver float64, tests and menus deliver int; both must work.
	assert.NoError(t, ValidateParameters(OpBlur, map[string]interface{}{"radius": 5.0}))
	assert.NoError(t, ValidateParameters(OpRotate, map[string]interface{}{"angle": 90.0}))
	assert.Error(t, ValidateParameters(OpContrast, map[string]interface{}{"factor": 0}))
}

func TestLibraryRejectsBeforePixelWork(t *testing.T) {
	lib := NewLibrary(testLogger())
	buf, err := core.NewImageBuffer(make([]byte, 4*4*3), 4, 4, 3)
	require.NoError(t, err)

	var transformErr *core.TransformError

	_, err = lib.Transform(buf, "sharpen", nil)
	require.Error(t, err)
	require.ErrorAs(t, err, &transformErr)
	assert.Equal(t, "sharpen", transformErr.Op)

	_, err = lib.Transform(buf, OpResize, map[string]interface{}{"scale": 0.0})
	require.Error(t, err)
	assert.ErrorAs(t, err, &transformErr)

	_, err = lib.Transform(buf, OpRotate, map[string]interface{}{"angle": 45})
	require.Error(t, err)
	assert.ErrorAs(t, err, &transformErr)

	_, err = lib.Transform(core.ImageBuffer{}, OpGrayscale, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &transformErr)
}

func TestParameterInfoDrivesSliders(t *testing.T) {
	blur, ok := Get(OpBlur)
	require.True(t, ok)
	info := blur.GetParameterInfo()
	require.Len(t, info, 1)
	assert.Equal(t, "radius", info[0].Name)
	assert.Equal(t, "int", info[0].Type)

	rotate, ok := Get(OpRotate)
	require.True(t, ok)
	info = rotate.GetParameterInfo()
	require.Len(t, info, 1)
	assert.Equal(t, []string{"90", "180", "270"}, info[0].Options)
}
