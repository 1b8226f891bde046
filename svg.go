package lowpoly

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
)

// SVG writes the triangle mesh as a vector image, one polygon per triangle.
// Colors are sampled exactly like the raster Renderer does.
type SVG struct {
	Title     string
	Mode      ColorMode
	Style     Style
	Thickness int
}

// Draw encodes the triangles into w. The source image provides the canvas size and the colors.
func (s *SVG) Draw(w io.Writer, triangles []Triangle, src image.Image) error {
	if s.Thickness < 1 {
		return &ConfigError{Field: "thickness", Value: s.Thickness, Reason: "must be at least 1"}
	}
	img := ImgToNRGBA(src)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	c := &canvas{src: img, thickness: float64(s.Thickness)}
	if s.Mode == ModeGrayscale {
		c.gray = Grayscale(img)
	}

	doc := svg.New(w)
	doc.Start(width, height)
	if s.Title != "" {
		doc.Title(s.Title)
	}
	doc.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	for _, t := range triangles {
		var col color.Color
		if s.Mode == ModeGrayscale {
			col = c.grayAt(t)
		} else {
			col = c.colorAt(t)
		}
		xs, ys := polygonCoords(toCanvas(t))
		doc.Polygon(xs, ys, s.style(col))
	}
	doc.End()

	return nil
}

func (s *SVG) style(col color.Color) string {
	r, g, b, _ := col.RGBA()
	rgb := fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
	if s.Style == StyleWireframe {
		return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linejoin:round", rgb, s.Thickness)
	}
	return fmt.Sprintf("fill:%s", rgb)
}

func polygonCoords(v [3]gg.Point) ([]int, []int) {
	xs := make([]int, len(v))
	ys := make([]int, len(v))
	for i, p := range v {
		xs[i] = int(math.Round(p.X))
		ys[i] = int(math.Round(p.Y))
	}
	return xs, ys
}
