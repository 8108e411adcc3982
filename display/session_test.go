//go:build headless
// +build headless

package display

import (
	"errors"
	"image"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// next polls s until something happens
func next(s *session) (*request, bool, error) {
	for {
		r, finished, err := s.poll()
		if r != nil || finished {
			return r, finished, err
		}
		runtime.Gosched()
	}
}

func TestSession(t *testing.T) {
	want := errors.New("composite: band: not found")

	shown := make(chan string, 2)
	s := newSession(func(v Viewer) error {
		for _, title := range []string{"Bands", "RGB Image"} {
			if err := v.Show(title, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
				return err
			}
			shown <- title
		}
		return want
	})

	r, finished, err := next(s)
	require.False(t, finished)
	require.NoError(t, err)
	assert.Equal(t, "Bands", r.title)
	assert.True(t, s.showing())

	// Nothing else is handed over until the current image is dismissed
	for i := 0; i < 100; i++ {
		r, finished, _ := s.poll()
		require.Nil(t, r)
		require.False(t, finished)
	}
	assert.Empty(t, shown)

	s.dismiss()
	assert.False(t, s.showing())

	r, finished, _ = next(s)
	require.False(t, finished)
	assert.Equal(t, "RGB Image", r.title)
	assert.Equal(t, "Bands", <-shown)

	s.dismiss()

	r, finished, err = next(s)
	assert.Nil(t, r)
	assert.True(t, finished)
	assert.Equal(t, want, err)
	assert.Equal(t, "RGB Image", <-shown)
}

func TestSessionNoImages(t *testing.T) {
	s := newSession(func(Viewer) error {
		return nil
	})

	r, finished, err := next(s)
	assert.Nil(t, r)
	assert.True(t, finished)
	assert.NoError(t, err)
}
