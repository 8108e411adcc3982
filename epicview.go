/*
Package epicview is a library for viewing DSCOVR EPIC level 1B band images
and the natural colour composite made from them.
*/
package epicview

import (
	"fmt"
	"image"
	"log"

	"github.com/bodgit/epicview/band"
	"github.com/bodgit/epicview/colormap"
	"github.com/bodgit/epicview/render"
	"github.com/bodgit/epicview/rgb"
)

// BandsTitle is the title of the band grid view
const BandsTitle = "Bands"

// Screen reports the size in pixels of the screen views are rendered for
type Screen interface {
	Size() (width, height int)
}

// Viewer shows an image, returning once the user has dismissed it
type Viewer interface {
	Show(title string, img image.Image) error
}

type EPICView struct {
	src    band.Source
	screen Screen
	logger *log.Logger

	set *band.Set
}

func New(src band.Source, screen Screen, logger *log.Logger) *EPICView {
	return &EPICView{
		src:    src,
		screen: screen,
		logger: logger,
	}
}

// bands resolves the source once and keeps the result for later views
func (e *EPICView) bands() (*band.Set, error) {
	if e.set != nil {
		return e.set, nil
	}

	set, err := e.src.Bands()
	if err != nil {
		return nil, err
	}
	e.logger.Printf("Found %d bands: %v\n", set.Length(), set.Names())

	e.set = set
	return set, nil
}

// ShowBands shows every band that has an image in a grid using the named
// palette
func (e *EPICView) ShowBands(v Viewer, name colormap.Name) error {
	set, err := e.bands()
	if err != nil {
		return err
	}

	tiles, err := render.Tiles(set, name)
	if err != nil {
		return err
	}
	e.logger.Printf("Rendering %d band images with the %s palette\n", len(tiles), name)

	width, height := e.screen.Size()
	img, err := render.Grid(tiles, width, height)
	if err != nil {
		return err
	}

	return v.Show(BandsTitle, img)
}

// ShowRGB shows the natural colour composite
func (e *EPICView) ShowRGB(v Viewer) error {
	set, err := e.bands()
	if err != nil {
		return err
	}

	c, err := rgb.FromSet(set)
	if err != nil {
		return fmt.Errorf("composite: %w", err)
	}
	rows, cols := c.Dims()
	e.logger.Printf("Built %dx%d composite from %s, %s and %s\n", cols, rows, rgb.RedBand, rgb.GreenBand, rgb.BlueBand)

	width, height := e.screen.Size()
	img, err := render.Composite(c, width, height)
	if err != nil {
		return err
	}

	return v.Show(render.CompositeTitle, img)
}

// Run shows the band grid followed by the composite
func (e *EPICView) Run(v Viewer, name colormap.Name) error {
	if err := e.ShowBands(v, name); err != nil {
		return err
	}
	return e.ShowRGB(v)
}
