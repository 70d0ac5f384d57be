// Control panel: one-shot filters, undo/redo, and the effect slider
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"interactive-image-editor/internal/transform"
)

// effect describes one slider-driven adjustment. Contrast and resize
// sliders work in percent and are mapped to the operation's factor/scale
// parameter on commit.
type effect struct {
	label   string
	op      string
	min     float64
	max     float64
	initial float64
	hint    string
}

func sliderEffects() []effect {
	blur := parameterRange(transform.OpBlur, 0, 25, 2)
	edge := parameterRange(transform.OpEdgeDetect, 10, 150, 50)
	delta := parameterRange(transform.OpBrightness, -100, 100, 0)

	return []effect{
		{"Blur", transform.OpBlur, blur[0], blur[1], blur[2], "Blur radius"},
		{"Edge", transform.OpEdgeDetect, edge[0], edge[1], edge[2], "Edge threshold (Canny)"},
		{"Brightness", transform.OpBrightness, delta[0], delta[1], delta[2], "Brightness delta"},
		{"Contrast", transform.OpContrast, 50, 300, 100, "Contrast (%)"},
		{"Resize", transform.OpResize, 10, 200, 100, "Resize (scale %)"},
	}
}

// parameterRange reads min/max/default for the operation's first parameter,
// falling back to the given values if the registry has none.
func parameterRange(op string, min, max, def float64) [3]float64 {
	operation, ok := transform.Get(op)
	if !ok {
		return [3]float64{min, max, def}
	}
	info := operation.GetParameterInfo()
	if len(info) == 0 {
		return [3]float64{min, max, def}
	}
	return [3]float64{numeric(info[0].Min, min), numeric(info[0].Max, max), numeric(info[0].Default, def)}
}

func numeric(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return def
}

// ControlPanel hosts the quick-action buttons and the preview slider.
type ControlPanel struct {
	logger  *logrus.Logger
	effects []effect

	grayscaleButton *widget.Button
	resetButton     *widget.Button
	undoButton      *widget.Button
	redoButton      *widget.Button
	effectRadio     *widget.RadioGroup
	slider          *widget.Slider
	hintLabel       *widget.Label
	valueLabel      *widget.Label
	box             *fyne.Container

	active effect

	onApply   func(op string, params map[string]interface{})
	onPreview func(op string, params map[string]interface{})
	onUndo    func()
	onRedo    func()
	onReset   func()
}

func NewControlPanel(logger *logrus.Logger) *ControlPanel {
	cp := &ControlPanel{
		logger:  logger,
		effects: sliderEffects(),
	}
	cp.initializeUI()
	cp.Disable()
	return cp
}

func (cp *ControlPanel) initializeUI() {
	cp.grayscaleButton = widget.NewButton("Grayscale", func() {
		if cp.onApply != nil {
			cp.onApply(transform.OpGrayscale, nil)
		}
	})
	cp.resetButton = widget.NewButton("Reset to Original", func() {
		if cp.onReset != nil {
			cp.onReset()
		}
	})
	cp.undoButton = widget.NewButton("Undo", func() {
		if cp.onUndo != nil {
			cp.onUndo()
		}
	})
	cp.redoButton = widget.NewButton("Redo", func() {
		if cp.onRedo != nil {
			cp.onRedo()
		}
	})

	labels := make([]string, len(cp.effects))
	for i, e := range cp.effects {
		labels[i] = e.label
	}

	cp.hintLabel = widget.NewLabel("")
	cp.valueLabel = widget.NewLabel("")
	cp.slider = widget.NewSlider(0, 1)

	cp.effectRadio = widget.NewRadioGroup(labels, func(selected string) {
		cp.configureSlider(selected)
	})
	cp.effectRadio.Required = true

	cp.slider.OnChanged = func(value float64) {
		cp.valueLabel.SetText(fmt.Sprintf("Value: %.0f", value))
		// Live preview; nothing is committed until the drag ends.
		if cp.onPreview != nil {
			cp.onPreview(cp.active.op, cp.paramsFor(value))
		}
	}
	cp.slider.OnChangeEnded = func(value float64) {
		if cp.onApply != nil {
			cp.onApply(cp.active.op, cp.paramsFor(value))
		}
	}

	cp.effectRadio.SetSelected(cp.effects[0].label)

	cp.box = container.NewVBox(
		widget.NewCard("Quick Actions", "", container.NewVBox(
			cp.grayscaleButton,
			cp.resetButton,
			cp.undoButton,
			cp.redoButton,
		)),
		widget.NewCard("Adjustments", "", container.NewVBox(
			cp.effectRadio,
			cp.hintLabel,
			cp.slider,
			cp.valueLabel,
		)),
	)
}

func (cp *ControlPanel) configureSlider(label string) {
	for _, e := range cp.effects {
		if e.label == label {
			cp.active = e
			break
		}
	}

	// Reconfigure without firing a preview of the previous effect.
	onChanged := cp.slider.OnChanged
	cp.slider.OnChanged = nil
	cp.slider.Min = cp.active.min
	cp.slider.Max = cp.active.max
	cp.slider.Step = 1
	cp.slider.SetValue(cp.active.initial)
	cp.slider.OnChanged = onChanged

	cp.hintLabel.SetText(cp.active.hint)
	cp.valueLabel.SetText(fmt.Sprintf("Value: %.0f", cp.active.initial))
}

func (cp *ControlPanel) paramsFor(value float64) map[string]interface{} {
	switch cp.active.op {
	case transform.OpBlur:
		return map[string]interface{}{"radius": int(value)}
	case transform.OpEdgeDetect:
		return map[string]interface{}{"threshold": int(value)}
	case transform.OpBrightness:
		return map[string]interface{}{"delta": int(value)}
	case transform.OpContrast:
		return map[string]interface{}{"factor": value / 100.0}
	case transform.OpResize:
		return map[string]interface{}{"scale": value / 100.0}
	}
	return nil
}

func (cp *ControlPanel) SetCallbacks(
	onApply func(op string, params map[string]interface{}),
	onPreview func(op string, params map[string]interface{}),
	onUndo func(),
	onRedo func(),
	onReset func(),
) {
	cp.onApply = onApply
	cp.onPreview = onPreview
	cp.onUndo = onUndo
	cp.onRedo = onRedo
	cp.onReset = onReset
}

func (cp *ControlPanel) GetContainer() fyne.CanvasObject {
	return cp.box
}

func (cp *ControlPanel) Enable() {
	cp.grayscaleButton.Enable()
	cp.resetButton.Enable()
	cp.effectRadio.Enable()
	cp.slider.Enable()
}

func (cp *ControlPanel) Disable() {
	cp.grayscaleButton.Disable()
	cp.resetButton.Disable()
	cp.undoButton.Disable()
	cp.redoButton.Disable()
	cp.effectRadio.Disable()
	cp.slider.Disable()
}

// SetHistoryState enables the undo/redo buttons to match what the history
// can actually do.
func (cp *ControlPanel) SetHistoryState(canUndo, canRedo bool) {
	if canUndo {
		cp.undoButton.Enable()
	} else {
		cp.undoButton.Disable()
	}
	if canRedo {
		cp.redoButton.Enable()
	} else {
		cp.redoButton.Disable()
	}
}
