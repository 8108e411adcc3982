/*
Package band implements the collection of spectral band images held in a
DSCOVR EPIC level 1B file.

Each band is a top-level group named after its wavelength, for example
"Band680nm", which may contain a two-dimensional "Image" dataset alongside
other entries such as geolocation data. Only the image is kept; everything
else is ignored.
*/
package band

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ImageKey is the name of the dataset holding the band samples
const ImageKey = "Image"

var (
	// ErrNotFound is returned when a named band is not present
	ErrNotFound = errors.New("band: not found")
	// ErrNoImage is returned when a band has no image dataset
	ErrNoImage = errors.New("band: no image")
	// ErrShape is returned when image samples can't be arranged in a grid
	ErrShape = errors.New("band: image is not square")
)

// Band is a single named spectral band. Image is nil if the band has no
// image dataset.
type Band struct {
	Name  string
	Image *mat.Dense
}

// HasImage reports whether the band carries image samples
func (b *Band) HasImage() bool {
	return b.Image != nil
}

// FromRows returns a band with an image built from rows, which must all be
// the same length.
func FromRows(name string, rows [][]float64) *Band {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Band{Name: name}
	}
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return &Band{Name: name, Image: m}
}

// Set is an ordered collection of bands. Bands keep the order in which they
// were added, which for a file is the order it enumerates them.
type Set struct {
	bands []*Band
	index map[string]int
}

// New returns an empty set
func New() *Set {
	return &Set{
		index: make(map[string]int),
	}
}

// Length returns the number of bands in the set
func (s *Set) Length() int {
	return len(s.bands)
}

// Add appends b to the set. Adding a band with an existing name replaces the
// earlier band in place.
func (s *Set) Add(b *Band) {
	if i, ok := s.index[b.Name]; ok {
		s.bands[i] = b
		return
	}
	s.bands = append(s.bands, b)
	s.index[b.Name] = len(s.bands) - 1
}

// Names returns the band names in order
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.bands))
	for _, b := range s.bands {
		names = append(names, b.Name)
	}
	return names
}

// Bands returns every band in order
func (s *Set) Bands() []*Band {
	return append(s.bands[:0:0], s.bands...)
}

// WithImage returns, in order, only those bands that have an image
func (s *Set) WithImage() []*Band {
	var bands []*Band
	for _, b := range s.bands {
		if b.HasImage() {
			bands = append(bands, b)
		}
	}
	return bands
}

// Lookup returns the band with the given name
func (s *Set) Lookup(name string) (*Band, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.bands[i], nil
}

// Image returns the image of the named band
func (s *Set) Image(name string) (*mat.Dense, error) {
	b, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !b.HasImage() {
		return nil, fmt.Errorf("%w: %q", ErrNoImage, name)
	}
	return b.Image, nil
}

// Source is anything that can resolve a set of bands
type Source interface {
	Bands() (*Set, error)
}
