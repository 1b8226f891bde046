package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/lowpoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 24, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			if x > 10 {
				img.SetNRGBA(x, y, color.NRGBA{R: 230, G: 210, B: 20, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 40, B: 120, A: 255})
			}
		}
	}
	return img
}

func TestWriteOutputs(t *testing.T) {
	p := lowpoly.NewProcessor()
	p.BlurSize = 3
	src := testImage()
	img, triangles, points, err := p.Process(src)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.jpg", "out.svg"} {
		dst := filepath.Join(dir, name)
		mask := filepath.Join(dir, "mask_"+name+".png")

		require.NoError(t, writeOutputs(dst, mask, p, img, triangles, points, src))
		assert.FileExists(t, dst)
		assert.FileExists(t, mask)
	}

	f, err := os.Open(filepath.Join(dir, "mask_out.png.png"))
	require.NoError(t, err)
	defer f.Close()
	decoded, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), decoded.Bounds())
}

func TestWriteOutputsSkipsMaskOnFailure(t *testing.T) {
	p := lowpoly.NewProcessor()
	src := testImage()
	img, triangles, points, err := p.Process(src)
	require.NoError(t, err)

	dir := t.TempDir()
	dst := filepath.Join(dir, "missing", "out.png")
	mask := filepath.Join(dir, "mask.png")

	err = writeOutputs(dst, mask, p, img, triangles, points, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image encoding")
	assert.NoFileExists(t, dst)
	assert.NoFileExists(t, mask)
}

func TestCollectJobs(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), nil, 0o644))
	}

	jobs, cleanup, err := collectJobs(in, out)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, []job{
		{in: filepath.Join(in, "a.jpg"), out: filepath.Join(out, "a.png")},
		{in: filepath.Join(in, "b.png"), out: filepath.Join(out, "b.png")},
	}, jobs)

	_, _, err = collectJobs(in, filepath.Join(out, "file.png"))
	assert.Error(t, err)
}
