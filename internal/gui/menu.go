// Menu handler for application actions
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/sirupsen/logrus"

	"interactive-image-editor/internal/imgio"
	"interactive-image-editor/internal/transform"
)

// MenuHandler builds the main menu and routes menu actions back to the
// application.
type MenuHandler struct {
	window fyne.Window
	logger *logrus.Logger

	onOpenPath func(string)
	onSave     func()
	onSaveAs   func(string)
	onUndo     func()
	onRedo     func()
	onReset    func()
	onApply    func(op string, params map[string]interface{})
}

func NewMenuHandler(window fyne.Window, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{
		window: window,
		logger: logger,
	}
}

func (mh *MenuHandler) SetCallbacks(
	onOpenPath func(string),
	onSave func(),
	onSaveAs func(string),
	onUndo func(),
	onRedo func(),
	onReset func(),
	onApply func(op string, params map[string]interface{}),
) {
	mh.onOpenPath = onOpenPath
	mh.onSave = onSave
	mh.onSaveAs = onSaveAs
	mh.onUndo = onUndo
	mh.onRedo = onRedo
	mh.onReset = onReset
	mh.onApply = onApply
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", mh.openImage),
		fyne.NewMenuItem("Save", func() {
			if mh.onSave != nil {
				mh.onSave()
			}
		}),
		fyne.NewMenuItem("Save As...", mh.saveImageAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", mh.confirmExit),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			if mh.onUndo != nil {
				mh.onUndo()
			}
		}),
		fyne.NewMenuItem("Redo", func() {
			if mh.onRedo != nil {
				mh.onRedo()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Original", func() {
			if mh.onReset != nil {
				mh.onReset()
			}
		}),
	)

	rotateMenu := fyne.NewMenu("Rotate",
		mh.rotateItem(90),
		mh.rotateItem(180),
		mh.rotateItem(270),
	)

	flipMenu := fyne.NewMenu("Flip",
		fyne.NewMenuItem("Flip Horizontal", func() {
			if mh.onApply != nil {
				mh.onApply(transform.OpFlipHorizontal, nil)
			}
		}),
		fyne.NewMenuItem("Flip Vertical", func() {
			if mh.onApply != nil {
				mh.onApply(transform.OpFlipVertical, nil)
			}
		}),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, rotateMenu, flipMenu)
}

func (mh *MenuHandler) rotateItem(angle int) *fyne.MenuItem {
	return fyne.NewMenuItem(fmt.Sprintf("Rotate %d°", angle), func() {
		if mh.onApply != nil {
			mh.onApply(transform.OpRotate, map[string]interface{}{"angle": angle})
		}
	})
}

func (mh *MenuHandler) openImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mh.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		mh.logger.WithField("path", path).Debug("Image selected")
		if mh.onOpenPath != nil {
			mh.onOpenPath(path)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(imgio.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) saveImageAs() {
	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mh.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		path := writer.URI().Path()
		if mh.onSaveAs != nil {
			mh.onSaveAs(path)
		}
	}, mh.window)

	fileDialog.SetFileName("edited.png")
	fileDialog.SetFilter(storage.NewExtensionFileFilter(imgio.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) confirmExit() {
	dialog.ShowConfirm("Exit", "Are you sure you want to exit?", func(ok bool) {
		if ok {
			mh.window.Close()
		}
	}, mh.window)
}
