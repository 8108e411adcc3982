/*
Package rgb implements the natural colour composite built from three EPIC
bands.

The red, green and blue channels come from the 680nm, 551nm and 443nm bands.
After orientation correction each channel has a fixed calibration gain
applied, then all three are normalised against a single shared maximum so
the balance between channels survives. Finally an exposure boost brightens
the result, which is clipped to [0, 1].
*/
package rgb

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/bodgit/epicview/band"
	"gonum.org/v1/gonum/mat"
)

// Names of the bands used for each channel
const (
	RedBand   = "Band680nm"
	GreenBand = "Band551nm"
	BlueBand  = "Band443nm"
)

// Calibration constants
const (
	RedGain   = 1.25
	GreenGain = 0.90
	BlueGain  = 1.0
	Exposure  = 1.8
)

// ErrShape is returned when the three channels are not the same size
var ErrShape = errors.New("rgb: channel shapes differ")

// Composite is a three channel image with every sample in [0, 1]
type Composite struct {
	R, G, B *mat.Dense
}

// Dims returns the number of rows and columns of the composite
func (c *Composite) Dims() (int, int) {
	return c.R.Dims()
}

// At returns the red, green and blue samples at row i, column j
func (c *Composite) At(i, j int) (float64, float64, float64) {
	return c.R.At(i, j), c.G.At(i, j), c.B.At(i, j)
}

func channel8(v float64) uint8 {
	return uint8(math.Round(v * 0xff))
}

// Image converts the composite to an 8-bit image, one pixel per sample
func (c *Composite) Image() *image.NRGBA {
	rows, cols := c.Dims()
	m := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, g, b := c.At(y, x)
			m.SetNRGBA(x, y, color.NRGBA{channel8(r), channel8(g), channel8(b), 0xff})
		}
	}
	return m
}

func clip(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// Build composites three corrected band images. The inputs are not modified.
// If the shared maximum is zero, or overflows once the gains are applied,
// the composite is black. A negative maximum is divided through like any
// other, which saturates every sample.
func Build(red, green, blue mat.Matrix) (*Composite, error) {
	r, c := red.Dims()
	for _, m := range []mat.Matrix{green, blue} {
		if mr, mc := m.Dims(); mr != r || mc != c {
			return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrShape, r, c, mr, mc)
		}
	}

	out := &Composite{
		R: new(mat.Dense),
		G: new(mat.Dense),
		B: new(mat.Dense),
	}
	out.R.Scale(RedGain, red)
	out.G.Scale(GreenGain, green)
	out.B.Scale(BlueGain, blue)

	peak := math.Max(mat.Max(out.R), math.Max(mat.Max(out.G), mat.Max(out.B)))

	black := peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0)

	for _, m := range []*mat.Dense{out.R, out.G, out.B} {
		if black {
			m.Zero()
			continue
		}
		m.Apply(func(_, _ int, v float64) float64 {
			return clip(v / peak * Exposure)
		}, m)
	}

	return out, nil
}

// FromSet corrects the red, green and blue bands found in s and composites
// them
func FromSet(s *band.Set) (*Composite, error) {
	var channels [3]*mat.Dense
	for i, name := range []string{RedBand, GreenBand, BlueBand} {
		m, err := s.Image(name)
		if err != nil {
			return nil, err
		}
		channels[i] = Correct(m)
	}
	return Build(channels[0], channels[1], channels[2])
}
