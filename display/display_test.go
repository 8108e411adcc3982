//go:build headless
// +build headless

package display

import (
	"bytes"
	"errors"
	"image"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tables := []struct {
		name          string
		width, height int
		screenW       int
		screenH       int
		wantW, wantH  int
	}{
		{"exact", 1920, 1080, 1920, 1080, 1920, 1080},
		{"wide", 2000, 1000, 1000, 1000, 1000, 500},
		{"tall", 1000, 2000, 1000, 1000, 500, 1000},
		{"upscale", 100, 100, 400, 300, 300, 300},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, table.width, table.height))
			got := Fit(img, table.screenW, table.screenH)
			assert.Equal(t, table.wantW, got.Bounds().Dx())
			assert.Equal(t, table.wantH, got.Bounds().Dy())
		})
	}
}

func TestFitUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, img, Fit(img, 10, 10).(*image.RGBA))
	assert.Same(t, img, Fit(img, 0, 0).(*image.RGBA))
}

func TestHeadlessRun(t *testing.T) {
	buf := new(bytes.Buffer)

	var titles []string
	err := Run(func(v Viewer) error {
		for _, title := range []string{"Bands", "RGB Image"} {
			titles = append(titles, title)
			require.NoError(t, v.Show(title, image.NewRGBA(image.Rect(0, 0, 4, 4))))
		}
		return nil
	}, log.New(buf, "", 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bands", "RGB Image"}, titles)
	assert.Equal(t, "Bands: 4x4 image\nRGB Image: 4x4 image\n", buf.String())

	want := errors.New("boom")
	assert.Equal(t, want, Run(func(Viewer) error { return want }, log.New(io.Discard, "", 0)))
}

func TestHeadlessMonitor(t *testing.T) {
	var s Screen = Monitor{}
	w, h := s.Size()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}
