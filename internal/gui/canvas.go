// Image display widget
package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"interactive-image-editor/internal/core"
)

// ImageView renders the current buffer, scaled to fit while keeping aspect
// ratio.
type ImageView struct {
	image *canvas.Image
	card  *widget.Card
}

func NewImageView() *ImageView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			placeholder.Set(x, y, color.RGBA{30, 30, 30, 255})
		}
	}

	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(400, 300))

	return &ImageView{
		image: img,
		card:  widget.NewCard("Image", "", img),
	}
}

func (iv *ImageView) GetContainer() fyne.CanvasObject {
	return iv.card
}

// Update replaces the displayed image with the given buffer.
func (iv *ImageView) Update(buf core.ImageBuffer) {
	if buf.IsZero() {
		return
	}
	iv.image.Image = buf.ToImage()
	iv.image.Refresh()
}
