// Main application window wiring the history engine to the widgets
package gui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"interactive-image-editor/internal/core"
	"interactive-image-editor/internal/imgio"
	"interactive-image-editor/internal/transform"
)

// Application composes the history engine, the transform library, and the
// Fyne shell. The widgets only ever call the history operations and render
// the buffers they get back.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Logger

	// Core components
	history *core.History
	library *transform.Library
	loader  *imgio.Loader

	// GUI components
	view     *ImageView
	controls *ControlPanel
	menu     *MenuHandler
	status   *widget.Label

	mainContent *container.Split
	currentPath string
}

func NewApplication(app fyne.App, logger *logrus.Logger) *Application {
	window := app.NewWindow("Interactive Image Editor")
	window.Resize(fyne.NewSize(1100, 700))
	window.CenterOnScreen()

	appInstance := &Application{
		app:    app,
		window: window,
		logger: logger,
	}

	appInstance.initializeCore()
	appInstance.initializeGUI()
	appInstance.setupLayout()
	appInstance.setupCallbacks()

	return appInstance
}

func (a *Application) initializeCore() {
	a.library = transform.NewLibrary(a.logger)
	a.history = core.NewHistory(a.library, a.logger)
	a.loader = imgio.NewLoader(a.logger)
}

func (a *Application) initializeGUI() {
	a.view = NewImageView()
	a.controls = NewControlPanel(a.logger)
	a.menu = NewMenuHandler(a.window, a.logger)
	a.status = widget.NewLabel("Ready. Use File → Open to load an image.")
}

func (a *Application) setupLayout() {
	a.mainContent = container.NewHSplit(
		container.NewScroll(a.controls.GetContainer()),
		container.NewPadded(a.view.GetContainer()),
	)
	a.mainContent.SetOffset(0.25)

	content := container.NewBorder(
		nil,      // top
		a.status, // bottom
		nil, nil,
		a.mainContent,
	)

	a.window.SetMainMenu(a.menu.GetMainMenu())
	a.window.SetContent(content)
}

func (a *Application) setupCallbacks() {
	a.controls.SetCallbacks(
		a.applyOperation,
		a.previewOperation,
		a.undo,
		a.redo,
		a.reset,
	)

	a.menu.SetCallbacks(
		a.LoadImageFromPath,
		a.saveCurrent,
		a.saveAs,
		a.undo,
		a.redo,
		a.reset,
		a.applyOperation,
	)
}

// LoadImageFromPath decodes the file and makes it the single history entry.
func (a *Application) LoadImageFromPath(path string) {
	buf, err := a.loader.LoadImage(path)
	if err != nil {
		a.showError("Failed to Load Image", err)
		return
	}

	if _, err := a.history.Load(buf, path); err != nil {
		a.showError("Failed to Load Image", err)
		return
	}

	a.currentPath = path
	a.view.Update(buf)
	a.controls.Enable()
	a.refreshHistoryButtons()
	a.setStatus("Loaded image.")
}

func (a *Application) applyOperation(op string, params map[string]interface{}) {
	buf, err := a.history.Apply(op, params)
	if err != nil {
		if errors.Is(err, core.ErrEmptyHistory) {
			a.setStatus("Open an image first.")
			return
		}
		a.showError("Operation Failed", err)
		return
	}

	a.view.Update(buf)
	a.refreshHistoryButtons()
	a.setStatus(fmt.Sprintf("Applied %s.", op))
}

// previewOperation renders a transform of the current buffer without
// committing it, so a slider drag produces one history entry, not fifty.
func (a *Application) previewOperation(op string, params map[string]interface{}) {
	current, err := a.history.Current()
	if err != nil {
		return
	}

	out, err := a.library.Transform(current, op, params)
	if err != nil {
		a.logger.WithFields(logrus.Fields{"op": op, "error": err}).Debug("Preview skipped")
		return
	}

	a.view.Update(out)
	a.setStatus(fmt.Sprintf("Preview: %s", op))
}

func (a *Application) undo() {
	buf, err := a.history.Undo()
	if err != nil {
		a.reportHistoryBoundary(err, "Nothing to undo.")
		return
	}

	a.view.Update(buf)
	a.refreshHistoryButtons()
	a.setStatus("Undo.")
}

func (a *Application) redo() {
	buf, err := a.history.Redo()
	if err != nil {
		a.reportHistoryBoundary(err, "Nothing to redo.")
		return
	}

	a.view.Update(buf)
	a.refreshHistoryButtons()
	a.setStatus("Redo.")
}

func (a *Application) reset() {
	buf, err := a.history.Reset()
	if err != nil {
		a.reportHistoryBoundary(err, "No original to reset to.")
		return
	}

	a.view.Update(buf)
	a.refreshHistoryButtons()
	a.setStatus("Reset to original.")
}

// reportHistoryBoundary turns recoverable history errors into status
// messages; anything else gets a dialog.
func (a *Application) reportHistoryBoundary(err error, boundaryMsg string) {
	if errors.Is(err, core.ErrNoMoreHistory) {
		a.setStatus(boundaryMsg)
		return
	}
	if errors.Is(err, core.ErrEmptyHistory) {
		a.setStatus("Open an image first.")
		return
	}
	a.showError("History Error", err)
}

func (a *Application) saveCurrent() {
	if a.currentPath == "" {
		a.menu.saveImageAs()
		return
	}
	a.saveAs(a.currentPath)
}

func (a *Application) saveAs(path string) {
	buf, err := a.history.Current()
	if err != nil {
		a.setStatus("Open an image first.")
		return
	}

	if err := a.loader.SaveImage(buf, path); err != nil {
		a.showError("Failed to Save Image", err)
		return
	}

	a.currentPath = path
	a.setStatus("Saved image.")
}

func (a *Application) refreshHistoryButtons() {
	a.controls.SetHistoryState(a.history.CanUndo(), a.history.CanRedo())
}

func (a *Application) setStatus(msg string) {
	if buf, err := a.history.Current(); err == nil {
		msg = fmt.Sprintf("%s | %s | %dx%dpx",
			msg, filepath.Base(a.history.Source()), buf.Width(), buf.Height())
	}
	a.status.SetText(msg)
}

func (a *Application) showError(title string, err error) {
	a.logger.WithFields(logrus.Fields{"title": title, "error": err}).Error("User-facing error")
	dialog.ShowError(err, a.window)
	a.setStatus(fmt.Sprintf("Error: %s", err.Error()))
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")

	a.window.SetCloseIntercept(func() {
		dialog.ShowConfirm("Exit", "Are you sure you want to exit?", func(ok bool) {
			if ok {
				a.app.Quit()
			}
		}, a.window)
	})

	a.window.ShowAndRun()
}
