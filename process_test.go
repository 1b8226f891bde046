package lowpoly

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleImage draws a few solid shapes, giving the edge detector something to find.
func sampleImage(width, height int) *image.NRGBA {
	img := uniformImage(width, height, color.NRGBA{R: 20, G: 60, B: 140, A: 255})
	for y := height / 4; y < height*3/4; y++ {
		for x := width / 5; x < width/2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 240, G: 200, B: 30, A: 255})
		}
	}
	cx, cy, r := width*3/4, height/2, height/4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{R: 180, G: 30, B: 60, A: 255})
			}
		}
	}
	return img
}

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewProcessorDefaults(t *testing.T) {
	p := NewProcessor()
	require.NoError(t, p.Validate())
	assert.Equal(t, 35, p.BlurSize)
	assert.Equal(t, DetectorSobel, p.EdgeDetector)
	assert.Equal(t, 3, p.KernelSize)
	assert.Equal(t, 150, p.Threshold)
	assert.Equal(t, 1000, p.MaxPoints)
	assert.Equal(t, 1, p.Thickness)
	assert.Equal(t, ModeColor, p.ColorMode())
	assert.Equal(t, StyleFill, p.Style())

	p.Grayscale, p.Wireframe = true, true
	assert.Equal(t, ModeGrayscale, p.ColorMode())
	assert.Equal(t, StyleWireframe, p.Style())
}

func TestProcessorValidate(t *testing.T) {
	cases := []struct {
		field  string
		modify func(p *Processor)
	}{
		{"blur", func(p *Processor) { p.BlurSize = 4 }},
		{"blur", func(p *Processor) { p.BlurSize = 0 }},
		{"detector", func(p *Processor) { p.EdgeDetector = "prewitt" }},
		{"kernel", func(p *Processor) { p.KernelSize = 5 }},
		{"threshold", func(p *Processor) { p.Threshold = 256 }},
		{"threshold", func(p *Processor) { p.Threshold = -1 }},
		{"max", func(p *Processor) { p.MaxPoints = 0 }},
		{"thickness", func(p *Processor) { p.Thickness = 0 }},
		{"noise", func(p *Processor) { p.Noise = -2 }},
	}
	for _, tc := range cases {
		p := NewProcessor()
		tc.modify(p)

		err := p.Validate()
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "field %s", tc.field)
		assert.Equal(t, tc.field, cfgErr.Field)
		assert.True(t, strings.HasPrefix(err.Error(), "invalid configuration: "+tc.field+"="))

		_, _, _, err = p.Process(sampleImage(10, 10))
		assert.Equal(t, cfgErr, errors.Cause(err))
	}
}

func TestProcess(t *testing.T) {
	p := NewProcessor()
	p.BlurSize = 3
	p.MaxPoints = 200

	src := sampleImage(64, 48)
	dst, triangles, points, err := p.Process(src)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 64, 48), dst.Bounds())
	assert.IsType(t, &image.RGBA{}, dst)
	assert.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), 201)
	assert.Greater(t, len(triangles), 2)

	for _, pt := range points {
		assert.True(t, pt.Row >= 0 && pt.Row < 48 && pt.Col >= 0 && pt.Col < 64)
		found := false
		for _, tr := range triangles {
			if tr.ContainsVertex(pt) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "point %v is not in the mesh", pt)
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	src := sampleImage(48, 40)
	for _, gray := range []bool{false, true} {
		for _, wireframe := range []bool{false, true} {
			p := NewProcessor()
			p.BlurSize = 5
			p.MaxPoints = 150
			p.Grayscale = gray
			p.Wireframe = wireframe
			p.DeleteBorder = wireframe
			p.Noise = 8

			first, t1, p1, err := p.Process(src)
			require.NoError(t, err)
			second, t2, p2, err := p.Process(src)
			require.NoError(t, err)

			assert.Equal(t, p1, p2)
			assert.Equal(t, t1, t2)
			assert.Equal(t, encode(t, first), encode(t, second))

			if gray {
				assert.IsType(t, &image.Gray{}, first)
			}
		}
	}
}

func TestProcessTinyImage(t *testing.T) {
	_, _, _, err := NewProcessor().Process(uniformImage(1, 1, sourceColor))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triangulation")

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "bounds", cfgErr.Field)
}

func TestNoise(t *testing.T) {
	src := uniformImage(16, 16, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	assert.Equal(t, src.Pix, Noise(0, src).Pix)

	first := Noise(20, src)
	assert.Equal(t, first.Pix, Noise(20, src).Pix)
	assert.NotEqual(t, src.Pix, first.Pix)

	for i := 0; i < len(first.Pix); i += 4 {
		px := first.Pix[i : i+4]
		assert.Equal(t, px[0], px[1])
		assert.Equal(t, px[0], px[2])
		assert.Equal(t, uint8(255), px[3])
	}
}
