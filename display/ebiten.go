//go:build !headless
// +build !headless

package display

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Monitor is the Screen of the monitor the window opens on
type Monitor struct{}

// Size implements the Screen interface
func (Monitor) Size() (int, int) {
	return ebiten.Monitor().Size()
}

// window implements ebiten.Game, showing each request until the user
// tries to close the window. Monitor queries are only made once the game
// loop is running.
type window struct {
	screen Screen
	s      *session
	logger *log.Logger
	err    error

	frame *ebiten.Image
}

func (w *window) present(r *request) {
	width, height := w.screen.Size()

	ebiten.SetWindowTitle(r.title)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowSize(width, height)

	w.frame = ebiten.NewImageFromImage(Fit(r.img, width, height))
	w.logger.Printf("Showing %s at %dx%d\n", r.title, width, height)
}

func (w *window) dismiss() {
	w.frame.Deallocate()
	w.frame = nil
	w.s.dismiss()
}

func (w *window) Update() error {
	if w.s.showing() {
		if ebiten.IsWindowBeingClosed() {
			w.dismiss()
		}
		return nil
	}

	r, finished, err := w.s.poll()
	switch {
	case finished:
		w.err = err
		return ebiten.Termination
	case r != nil:
		w.present(r)
	}

	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		return
	}

	sb, fb := screen.Bounds(), w.frame.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sb.Dx()-fb.Dx())/2, float64(sb.Dy()-fb.Dy())/2)
	screen.DrawImage(w.frame, op)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and calls fn with a Viewer that shows images in it. The
// window stays open until fn returns. Run must be called from the main
// goroutine; fn runs on another.
func Run(fn func(Viewer) error, logger *log.Logger) error {
	w := &window{
		screen: Monitor{},
		s:      newSession(fn),
		logger: logger,
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil {
		return err
	}

	return w.err
}
