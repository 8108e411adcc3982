package band

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *Set {
	s := New()
	s.Add(FromRows("Band317nm", [][]float64{{1, 2}, {3, 4}}))
	s.Add(&Band{Name: "Geolocation"})
	s.Add(FromRows("Band680nm", [][]float64{{5, 6}, {7, 8}}))
	return s
}

func TestSetOrder(t *testing.T) {
	s := testSet()

	assert.Equal(t, 3, s.Length())
	assert.Equal(t, []string{"Band317nm", "Geolocation", "Band680nm"}, s.Names())

	var names []string
	for _, b := range s.WithImage() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Band317nm", "Band680nm"}, names)
}

func TestSetAddReplaces(t *testing.T) {
	s := testSet()
	s.Add(FromRows("Geolocation", [][]float64{{1}}))

	assert.Equal(t, []string{"Band317nm", "Geolocation", "Band680nm"}, s.Names())
	assert.Len(t, s.WithImage(), 3)
}

func TestSetLookup(t *testing.T) {
	s := testSet()

	b, err := s.Lookup("Band680nm")
	require.NoError(t, err)
	assert.Equal(t, 7.0, b.Image.At(1, 0))

	_, err = s.Lookup("Band551nm")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "Band551nm")

	_, err = s.Image("Geolocation")
	assert.True(t, errors.Is(err, ErrNoImage))

	m, err := s.Image("Band317nm")
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
}

func TestBandsIsACopy(t *testing.T) {
	s := testSet()
	bands := s.Bands()
	bands[0] = nil

	b, err := s.Lookup("Band317nm")
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.NotNil(t, s.Bands()[0])
}

func TestFromRowsEmpty(t *testing.T) {
	b := FromRows("Empty", nil)
	assert.False(t, b.HasImage())
}

func TestSquare(t *testing.T) {
	tables := []struct {
		name string
		n    int
		side int
		err  error
	}{
		{"one", 1, 1, nil},
		{"sixteen", 16, 4, nil},
		{"epic", 2048 * 2048, 2048, nil},
		{"empty", 0, 0, ErrShape},
		{"oblong", 12, 0, ErrShape},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			m, err := square(make([]float64, table.n))
			if table.err != nil {
				assert.Equal(t, table.err, err)
				return
			}
			require.NoError(t, err)
			r, c := m.Dims()
			assert.Equal(t, table.side, r)
			assert.Equal(t, table.side, c)
		})
	}
}

func TestSplitPath(t *testing.T) {
	assert.Nil(t, splitPath("/"))
	assert.Equal(t, []string{"Band443nm"}, splitPath("/Band443nm/"))
	assert.Equal(t, []string{"Band443nm", "Image"}, splitPath("/Band443nm/Image"))
	assert.Equal(t, []string{"Band443nm", "Image"}, splitPath("Band443nm/Image"))
}
