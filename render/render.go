/*
Package render draws band images and composites into plain images sized for
the screen.

A band grid is three columns wide and four rows deep. Each tile shows one
band as a heat map through the chosen palette with a colour bar on its right
and the band name as its title. More than twelve bands grow the grid by
extra rows rather than dropping any.
*/
package render

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	gridCols = 3
	gridRows = 4

	// Spacing between tiles and around the grid, in pixels
	padX = 40
	padY = 30
	pad  = 10

	// Fraction of a tile given over to its colour bar
	barFraction = 0.2
)

// Layout returns the grid needed for n tiles
func Layout(n int) (rows, cols int) {
	rows = gridRows
	if need := (n + gridCols - 1) / gridCols; need > rows {
		rows = need
	}
	return rows, gridCols
}

// One point is one pixel at 72 DPI
func newCanvas(width, height int) (*vgimg.Canvas, draw.Canvas) {
	c := vgimg.NewWith(vgimg.UseWH(vg.Length(width), vg.Length(height)), vgimg.UseDPI(72))
	return c, draw.New(c)
}

// fitAspect shrinks c about its centre so that it has the aspect ratio of a
// cols by rows image
func fitAspect(c draw.Canvas, rows, cols int) draw.Canvas {
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	if rows <= 0 || cols <= 0 || w <= 0 || h <= 0 {
		return c
	}
	aspect := vg.Length(cols) / vg.Length(rows)
	if w/h > aspect {
		dx := (w - h*aspect) / 2
		return draw.Crop(c, dx, -dx, 0, 0)
	}
	dy := (h - w/aspect) / 2
	return draw.Crop(c, 0, 0, dy, -dy)
}

// rowTicks labels the Y axis from the top, the way image rows are counted
type rowTicks struct {
	top float64
}

func (t rowTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(t.top-ticks[i].Value, 'f', -1, 64)
	}
	return ticks
}

// finiteRange returns the smallest and largest finite values in v. If v has
// none, or they are all equal, the range is widened so it isn't empty.
func finiteRange(v []float64) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	switch {
	case min > max:
		return 0, 1
	case min == max:
		return min, min + 1
	}
	return min, max
}
