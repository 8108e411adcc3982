package render

import (
	"image"

	"github.com/bodgit/epicview/rgb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CompositeTitle is drawn above the composite
const CompositeTitle = "RGB Image"

// Composite draws c into a width by height image, keeping its aspect ratio
func Composite(c *rgb.Composite, width, height int) (image.Image, error) {
	rows, cols := c.Dims()

	p := plot.New()
	p.Title.Text = CompositeTitle
	p.Add(plotter.NewImage(c.Image(), 0, 0, float64(cols), float64(rows)))
	p.Y.Tick.Marker = rowTicks{top: float64(rows)}

	img, dc := newCanvas(width, height)
	dc = draw.Crop(dc, vg.Length(pad), -vg.Length(pad), vg.Length(pad), -vg.Length(pad))
	p.Draw(fitAspect(dc, rows, cols))

	return img.Image(), nil
}
