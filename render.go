package lowpoly

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
)

// ColorMode selects the channel layout used for the triangle colors.
type ColorMode int

// Style selects how every triangle is painted.
type Style int

const (
	// ModeColor samples the full color of the source image.
	ModeColor ColorMode = iota
	// ModeGrayscale samples the luma intensity of the source image.
	ModeGrayscale
)

const (
	// StyleFill paints the triangle interiors.
	StyleFill Style = iota
	// StyleWireframe strokes only the triangle edges.
	StyleWireframe
)

func (m ColorMode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeGrayscale:
		return "grayscale"
	}
	return "unknown"
}

func (s Style) String() string {
	switch s {
	case StyleFill:
		return "fill"
	case StyleWireframe:
		return "wireframe"
	}
	return "unknown"
}

// background is the color of the canvas before any triangle is drawn.
var background = color.White

// drawFunc paints a single triangle of the mesh.
type drawFunc func(c *canvas, t Triangle)

// Renderer maps a triangle mesh back onto the colors of the source image.
type Renderer struct {
	mode      ColorMode
	style     Style
	thickness int
	draw      drawFunc
}

// NewRenderer creates a renderer for one of the four color mode and style combinations.
// The combination is resolved once, every triangle of a run is painted the same way.
func NewRenderer(mode ColorMode, style Style, thickness int) (*Renderer, error) {
	if thickness < 1 {
		return nil, &ConfigError{Field: "thickness", Value: thickness, Reason: "must be at least 1"}
	}
	r := &Renderer{mode: mode, style: style, thickness: thickness}

	switch {
	case mode == ModeColor && style == StyleFill:
		r.draw = func(c *canvas, t Triangle) { c.fill(t, c.colorAt(t)) }
	case mode == ModeColor && style == StyleWireframe:
		r.draw = func(c *canvas, t Triangle) { c.stroke(t, c.colorAt(t)) }
	case mode == ModeGrayscale && style == StyleFill:
		r.draw = func(c *canvas, t Triangle) { c.fill(t, c.grayAt(t)) }
	case mode == ModeGrayscale && style == StyleWireframe:
		r.draw = func(c *canvas, t Triangle) { c.stroke(t, c.grayAt(t)) }
	case mode != ModeColor && mode != ModeGrayscale:
		return nil, &ConfigError{Field: "mode", Value: mode, Reason: "unknown color mode"}
	default:
		return nil, &ConfigError{Field: "style", Value: style, Reason: "unknown render style"}
	}
	return r, nil
}

// Render draws the triangles over a white canvas having the size of the source image.
// Grayscale renderers return an *image.Gray, color renderers an *image.RGBA.
func (r *Renderer) Render(triangles []Triangle, src image.Image) image.Image {
	img := ImgToNRGBA(src)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	ctx := gg.NewContext(width, height)
	ctx.SetColor(background)
	ctx.Clear()

	c := &canvas{
		Context:   ctx,
		src:       img,
		thickness: float64(r.thickness),
	}
	if r.mode == ModeGrayscale {
		c.gray = Grayscale(img)
	}

	for _, t := range triangles {
		r.draw(c, t)
	}

	if r.mode == ModeGrayscale {
		out := image.NewGray(image.Rect(0, 0, width, height))
		draw.Draw(out, out.Bounds(), ctx.Image(), image.Point{}, draw.Src)
		return out
	}
	return ctx.Image()
}

// toCanvas remaps the triangle vertices from (row, col) to (x, y).
func toCanvas(t Triangle) [3]gg.Point {
	var pts [3]gg.Point
	for i, v := range t.Vertices() {
		pts[i] = gg.Point{X: v.Col, Y: v.Row}
	}
	return pts
}

// sampleAt returns the integer truncated average of the vertices,
// clamped to the image bounds.
func sampleAt(v [3]gg.Point, width, height int) (int, int) {
	x := int((v[0].X + v[1].X + v[2].X) / 3.0)
	y := int((v[0].Y + v[1].Y + v[2].Y) / 3.0)

	return clamp(x, 0, width-1), clamp(y, 0, height-1)
}

// canvas bundles the drawing context with the images the colors are sampled from.
type canvas struct {
	*gg.Context
	src       *image.NRGBA
	gray      *image.Gray
	thickness float64
}

func (c *canvas) colorAt(t Triangle) color.Color {
	b := c.src.Bounds()
	x, y := sampleAt(toCanvas(t), b.Dx(), b.Dy())
	i := c.src.PixOffset(x, y)

	return color.RGBA{R: c.src.Pix[i], G: c.src.Pix[i+1], B: c.src.Pix[i+2], A: 255}
}

func (c *canvas) grayAt(t Triangle) color.Color {
	b := c.gray.Bounds()
	x, y := sampleAt(toCanvas(t), b.Dx(), b.Dy())

	return color.Gray{Y: c.gray.Pix[c.gray.PixOffset(x, y)]}
}

// path traces the triangle outline. Vertices are shifted by half a pixel
// so that the strokes are centered on the pixels they pass through.
func (c *canvas) path(v [3]gg.Point) {
	c.MoveTo(v[0].X+0.5, v[0].Y+0.5)
	c.LineTo(v[1].X+0.5, v[1].Y+0.5)
	c.LineTo(v[2].X+0.5, v[2].Y+0.5)
	c.ClosePath()
}

// fill paints every pixel whose coordinates lie inside the triangle or on one of
// its edges with the solid color. Pixels are never blended: a pixel shared by two
// triangles takes the color of the last one drawn.
func (c *canvas) fill(t Triangle, col color.Color) {
	dst, ok := c.Image().(*image.RGBA)
	if !ok {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)

	v := t.Vertices()
	minX := clamp(int(math.Floor(Min(v[0].Col, v[1].Col, v[2].Col))), b.Min.X, b.Max.X-1)
	maxX := clamp(int(math.Ceil(Max(v[0].Col, v[1].Col, v[2].Col))), b.Min.X, b.Max.X-1)
	minY := clamp(int(math.Floor(Min(v[0].Row, v[1].Row, v[2].Row))), b.Min.Y, b.Max.Y-1)
	maxY := clamp(int(math.Ceil(Max(v[0].Row, v[1].Row, v[2].Row))), b.Min.Y, b.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !t.Covers(Point{Row: float64(y), Col: float64(x)}) {
				continue
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = rgba.R
			dst.Pix[i+1] = rgba.G
			dst.Pix[i+2] = rgba.B
			dst.Pix[i+3] = rgba.A
		}
	}
}

func (c *canvas) stroke(t Triangle, col color.Color) {
	c.path(toCanvas(t))
	c.SetColor(col)
	c.SetLineWidth(c.thickness)
	c.Stroke()
}
