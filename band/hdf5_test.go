package band

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/scigolib/hdf5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureGroup struct {
	name  string
	dims  []uint64
	image []float32
}

func writeFixture(t *testing.T, groups []fixtureGroup) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "epic.h5")

	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	require.NoError(t, err)

	for _, g := range groups {
		_, err := fw.CreateGroup("/" + g.name)
		require.NoError(t, err)

		if g.image == nil {
			continue
		}

		dw, err := fw.CreateDataset("/"+g.name+"/"+ImageKey, hdf5.Float32, g.dims)
		require.NoError(t, err)
		require.NoError(t, dw.Write(g.image))
	}

	require.NoError(t, fw.Close())

	return path
}

func TestFileBands(t *testing.T) {
	path := writeFixture(t, []fixtureGroup{
		{"Band680nm", []uint64{2, 2}, []float32{1, 2, 3, 4}},
		{"Band443nm", []uint64{2, 2}, []float32{0.5, 0.25, 8, 16}},
		{"Band551nm", []uint64{2, 2}, []float32{0, 0, 0, 1}},
		{"Geolocation", nil, nil},
	})

	f := NewFile(path)
	assert.Equal(t, path, f.Path())

	s, err := f.Bands()
	require.NoError(t, err)

	assert.Equal(t, []string{"Band680nm", "Band443nm", "Band551nm", "Geolocation"}, s.Names())

	var names []string
	for _, b := range s.WithImage() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Band680nm", "Band443nm", "Band551nm"}, names)

	m, err := s.Image("Band443nm")
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{0.5, 0.25, 8, 16}, m.RawMatrix().Data)

	_, err = s.Image("Geolocation")
	assert.True(t, errors.Is(err, ErrNoImage))
}

func TestFileBandsNotSquare(t *testing.T) {
	path := writeFixture(t, []fixtureGroup{
		{"Band317nm", []uint64{2, 3}, []float32{1, 2, 3, 4, 5, 6}},
	})

	_, err := NewFile(path).Bands()
	assert.True(t, errors.Is(err, ErrShape))
	assert.Contains(t, err.Error(), "Band317nm")
}

func TestFileMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "does-not-exist.h5")).Bands()
	assert.Error(t, err)
}
