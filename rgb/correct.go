package rgb

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FillInvalid returns a copy of m with every NaN or infinite sample set to 0
func FillInvalid(m mat.Matrix) *mat.Dense {
	d := mat.DenseCopyOf(m)
	d.Apply(func(_, _ int, v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}, d)
	return d
}

// Rot90CW returns m rotated by 90 degrees clockwise. An r by c matrix
// becomes c by r.
func Rot90CW(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	d := mat.NewDense(c, r, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			d.Set(i, j, m.At(r-1-j, i))
		}
	}
	return d
}

// FlipLR returns m mirrored left to right
func FlipLR(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, m.At(i, c-1-j))
		}
	}
	return d
}

// Correct prepares a raw band image for compositing. Invalid samples are
// zeroed and the sensor orientation is turned into display orientation by
// rotating clockwise and mirroring, so an H by W image becomes W by H.
func Correct(m mat.Matrix) *mat.Dense {
	return FlipLR(Rot90CW(FillInvalid(m)))
}
