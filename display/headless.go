//go:build headless
// +build headless

package display

import (
	"image"
	"log"
)

// Monitor is a fixed size Screen for builds without a window system
type Monitor struct{}

// Size implements the Screen interface
func (Monitor) Size() (int, int) {
	return 1920, 1080
}

type logViewer struct {
	logger *log.Logger
}

func (v logViewer) Show(title string, img image.Image) error {
	b := img.Bounds()
	v.logger.Printf("%s: %dx%d image\n", title, b.Dx(), b.Dy())
	return nil
}

// Run calls fn with a Viewer that logs each image to logger and returns
// immediately
func Run(fn func(Viewer) error, logger *log.Logger) error {
	return fn(logViewer{logger: logger})
}
