/*
Package colormap implements the named false-colour palettes a band image can
be rendered with.

Every palette is exposed as a gonum palette.ColorMap so it can drive both a
heat map and its colour bar. Jet is defined per channel and rainbow is a
closed-form function of the normalised value, so both match matplotlib.
Viridis, plasma, inferno, magma and cividis are approximations: ten evenly
spaced colours taken from matplotlib's 256 entry tables are blended linearly
in RGB, so colours between control points can differ slightly from the
originals.
*/
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// Name identifies one of the supported palettes
type Name string

// Supported palettes
const (
	Rainbow Name = "rainbow"
	Gray    Name = "gray"
	Viridis Name = "viridis"
	Jet     Name = "jet"
	Plasma  Name = "plasma"
	Inferno Name = "inferno"
	Magma   Name = "magma"
	Cividis Name = "cividis"
)

// Default is used whenever the requested palette isn't recognised
const Default = Rainbow

// Names lists the supported palettes in the order they are offered
var Names = []Name{Rainbow, Gray, Viridis, Jet, Plasma, Inferno, Magma, Cividis}

// ErrUnknown is returned for a palette name that isn't supported
var ErrUnknown = errors.New("colormap: unknown palette")

// Select returns the palette named by s, which must match exactly. If it
// doesn't, Default is returned along with false.
func Select(s string) (Name, bool) {
	for _, n := range Names {
		if string(n) == s {
			return n, true
		}
	}
	return Default, false
}

// ColorMap maps values between Min and Max to colours of a named palette. It
// implements the palette.ColorMap interface.
type ColorMap struct {
	name  Name
	fn    func(float64) colorful.Color
	min   float64
	max   float64
	alpha float64
}

// New returns the palette with the given name covering [0, 1]
func New(name Name) (*ColorMap, error) {
	fn, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return &ColorMap{
		name:  name,
		fn:    fn,
		max:   1,
		alpha: 1,
	}, nil
}

// Name returns the palette name
func (c *ColorMap) Name() Name {
	return c.name
}

// At implements the palette.ColorMap At method
func (c *ColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < c.min:
		return nil, palette.ErrUnderflow
	case v > c.max:
		return nil, palette.ErrOverflow
	}

	var t float64
	if c.max > c.min {
		t = (v - c.min) / (c.max - c.min)
	}

	r, g, b := c.fn(t).Clamped().RGB255()
	return color.NRGBA{r, g, b, uint8(c.alpha*0xff + 0.5)}, nil
}

// Max implements the palette.ColorMap Max method
func (c *ColorMap) Max() float64 { return c.max }

// Min implements the palette.ColorMap Min method
func (c *ColorMap) Min() float64 { return c.min }

// SetMax implements the palette.ColorMap SetMax method
func (c *ColorMap) SetMax(v float64) { c.max = v }

// SetMin implements the palette.ColorMap SetMin method
func (c *ColorMap) SetMin(v float64) { c.min = v }

// Alpha implements the palette.ColorMap Alpha method
func (c *ColorMap) Alpha() float64 { return c.alpha }

// SetAlpha implements the palette.ColorMap SetAlpha method
func (c *ColorMap) SetAlpha(v float64) {
	c.alpha = math.Max(0, math.Min(1, v))
}

type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}

// Palette implements the palette.ColorMap Palette method, returning n
// colours evenly spaced between Min and Max
func (c *ColorMap) Palette(n int) palette.Palette {
	p := make(colors, n)
	for i := range p {
		var v float64
		if n > 1 {
			v = c.min + (c.max-c.min)*float64(i)/float64(n-1)
		} else {
			v = c.min
		}
		col, err := c.At(math.Min(math.Max(v, c.min), c.max))
		if err != nil {
			col = color.Transparent
		}
		p[i] = col
	}
	return p
}

var _ palette.ColorMap = (*ColorMap)(nil)
