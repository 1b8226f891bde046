package lowpoly

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGDraw(t *testing.T) {
	src := uniformImage(16, 12, sourceColor)
	triangles, err := Triangulate(randomPoints(8, 25, 16, 12), 16, 12, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	s := &SVG{Title: "mesh", Mode: ModeColor, Style: StyleFill, Thickness: 1}
	require.NoError(t, s.Draw(&buf, triangles, src))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
	assert.Equal(t, "16", root.Attributes["width"])
	assert.Equal(t, "12", root.Attributes["height"])

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, len(triangles))
	for _, p := range polygons {
		assert.Equal(t, "fill:rgb(200,40,90)", p.Attributes["style"])
		assert.Len(t, strings.Fields(p.Attributes["points"]), 3)
	}
	assert.Len(t, root.FindAll("rect"), 1)
}

func TestSVGWireframeGrayscale(t *testing.T) {
	var buf bytes.Buffer
	s := &SVG{Mode: ModeGrayscale, Style: StyleWireframe, Thickness: 2}
	require.NoError(t, s.Draw(&buf, singleTriangle(t), uniformImage(20, 20, sourceColor)))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 1)
	assert.Equal(t, "fill:none;stroke:rgb(94,94,94);stroke-width:2;stroke-linejoin:round", polygons[0].Attributes["style"])
	// Vertices are written in (x, y) order.
	assert.Equal(t, []string{"0,0", "0,10", "10,0"}, strings.Fields(polygons[0].Attributes["points"]))
	assert.Empty(t, root.FindAll("title"))
}

func TestSVGInvalidThickness(t *testing.T) {
	var buf bytes.Buffer
	err := (&SVG{Thickness: 0}).Draw(&buf, nil, uniformImage(4, 4, sourceColor))
	assert.IsType(t, &ConfigError{}, err)
	assert.Zero(t, buf.Len())
}
