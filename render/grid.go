package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/bodgit/epicview/band"
	"github.com/bodgit/epicview/colormap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	paletteSize = 256
	titleHeight = 20
)

var errNoTiles = errors.New("render: no bands with an image")

// bandGrid adapts a band image to plotter.GridXYZ. Row 0 of the image is
// drawn at the top.
type bandGrid struct {
	m *mat.Dense
}

func (g bandGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g bandGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g bandGrid) X(c int) float64 {
	return float64(c)
}

func (g bandGrid) Y(r int) float64 {
	return float64(r)
}

// Tile is a single band prepared for drawing
type Tile struct {
	Title string
	Min   float64
	Max   float64

	image *mat.Dense
	cmap  palette.ColorMap
}

// Tiles returns a tile for every band in s that has an image, in order. Bands
// without an image don't take up a tile.
func Tiles(s *band.Set, name colormap.Name) ([]*Tile, error) {
	var tiles []*Tile
	for _, b := range s.WithImage() {
		cm, err := colormap.New(name)
		if err != nil {
			return nil, err
		}
		lo, hi := finiteRange(b.Image.RawMatrix().Data)
		cm.SetMax(hi)
		cm.SetMin(lo)
		tiles = append(tiles, &Tile{
			Title: b.Name,
			Min:   lo,
			Max:   hi,
			image: b.Image,
			cmap:  cm,
		})
	}
	return tiles, nil
}

func (t *Tile) heatMap() *plot.Plot {
	p := plot.New()
	p.Title.Text = t.Title

	pal := t.cmap.Palette(paletteSize)
	hm := plotter.NewHeatMap(bandGrid{t.image}, pal)
	hm.Min, hm.Max = t.Min, t.Max
	// Infinite samples take the colour at the end of the scale they're beyond
	colors := pal.Colors()
	hm.Underflow, hm.Overflow = colors[0], colors[len(colors)-1]
	hm.NaN = color.Transparent
	hm.Rasterized = true
	p.Add(hm)

	rows, _ := t.image.Dims()
	p.Y.Tick.Marker = rowTicks{top: float64(rows - 1)}

	return p
}

func (t *Tile) colorBar() *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Add(&plotter.ColorBar{
		ColorMap: t.cmap,
		Vertical: true,
		Colors:   paletteSize,
	})
	return p
}

func (t *Tile) draw(c draw.Canvas) {
	w := c.Max.X - c.Min.X
	bar := w * barFraction

	heat := draw.Crop(c, 0, -bar, 0, 0)
	rows, cols := t.image.Dims()
	t.heatMap().Draw(fitAspect(heat, rows, cols))

	// Leave room for the title so the bar lines up with the image
	legend := draw.Crop(c, w-bar, 0, 0, -vg.Length(titleHeight))
	t.colorBar().Draw(legend)
}

// Grid draws tiles in row-major order into a width by height image
func Grid(tiles []*Tile, width, height int) (image.Image, error) {
	if len(tiles) == 0 {
		return nil, errNoTiles
	}

	rows, cols := Layout(len(tiles))
	img, dc := newCanvas(width, height)

	ts := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Length(padX),
		PadY:      vg.Length(padY),
		PadTop:    vg.Length(pad),
		PadBottom: vg.Length(pad),
		PadLeft:   vg.Length(pad),
		PadRight:  vg.Length(pad),
	}

	for i, t := range tiles {
		c := ts.At(dc, i%cols, i/cols)
		if c.Max.X <= c.Min.X || c.Max.Y <= c.Min.Y {
			continue
		}
		t.draw(c)
	}

	return img.Image(), nil
}
