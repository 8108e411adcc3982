package band

import (
	"fmt"
	"math"
	"strings"

	"github.com/scigolib/hdf5"
	"gonum.org/v1/gonum/mat"
)

// File is a Source backed by an HDF5 file on disk
type File struct {
	path string
}

// NewFile returns a Source reading bands from the HDF5 file at path
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the path of the underlying file
func (f *File) Path() string {
	return f.path
}

// Bands opens the file, reads every band and closes it again. The file is
// not held open between calls.
func (f *File) Bands() (*Set, error) {
	file, err := hdf5.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	set := New()

	var walkErr error
	file.Walk(func(path string, obj hdf5.Object) {
		if walkErr != nil {
			return
		}

		parts := splitPath(path)

		switch v := obj.(type) {
		case *hdf5.Group:
			// Only direct children of the root are bands
			if len(parts) == 1 {
				addName(set, parts[0])
			}
		case *hdf5.Dataset:
			if len(parts) != 2 || parts[1] != ImageKey {
				return
			}
			data, err := v.Read()
			if err != nil {
				walkErr = fmt.Errorf("band: read %s: %w", path, err)
				return
			}
			m, err := square(data)
			if err != nil {
				walkErr = fmt.Errorf("%w: %q has %d samples", err, parts[0], len(data))
				return
			}
			addName(set, parts[0])
			b, _ := set.Lookup(parts[0])
			b.Image = m
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return set, nil
}

func addName(s *Set, name string) {
	if _, ok := s.index[name]; !ok {
		s.Add(&Band{Name: name})
	}
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// EPIC band images are square, so the side is recovered from the number of
// samples
func square(data []float64) (*mat.Dense, error) {
	n := len(data)
	side := int(math.Round(math.Sqrt(float64(n))))
	if n == 0 || side*side != n {
		return nil, ErrShape
	}
	return mat.NewDense(side, side, data), nil
}
