// Package display shows prepared images to the user one at a time.
//
// Each image is shown in a window anchored at the top left corner of the
// primary screen and sized to match it. Showing an image blocks until the
// user closes the view, after which the next one can be shown.
package display

import (
	"image"

	"golang.org/x/image/draw"
)

// Screen reports the size in pixels of the primary screen
type Screen interface {
	Size() (width, height int)
}

// Viewer shows an image and waits until the user dismisses it
type Viewer interface {
	Show(title string, img image.Image) error
}

// Fit scales img to fit within width by height, keeping its aspect ratio. An
// image that already fits exactly is returned unchanged.
func Fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height || b.Empty() || width <= 0 || height <= 0 {
		return img
	}

	w, h := width, b.Dy()*width/b.Dx()
	if h > height {
		w, h = b.Dx()*height/b.Dy(), height
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, b, draw.Over, nil)

	return dst
}
