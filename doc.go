/*
Package lowpoly is an image processing library which converts images to low-poly,
stained-glass like art using Delaunay triangulation.

The source image is blurred, converted to grayscale and passed through an edge detector
(Sobel or Laplacian). The pixels of the resulting intensity map reaching a threshold are
sampled down to a bounded number of points, which are triangulated with the Bowyer-Watson
algorithm. Every triangle is finally painted with the source color found at its center,
either filled or as a wireframe, in color or grayscale.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ lowpoly --help

Example to generate the triangulated image as a raster type:

	package main

	import (
		"fmt"
		"github.com/esimov/lowpoly"
	)

	func main() {
		p := lowpoly.NewProcessor()
		p.MaxPoints = 2500
		p.Wireframe = true

		img, triangles, points, err := p.Process(srcImg)
		if err != nil {
			fmt.Printf("Error on triangulation process: %s", err.Error())
		}
		fmt.Printf("%d triangles generated out of %d points\n", len(triangles), len(points))
		_ = img
	}

The stages are also usable on their own:

	edges, _ := lowpoly.EdgeMap(src, 35, lowpoly.DetectorSobel, 3)
	points := lowpoly.GetEdgePoints(edges, 150, 1000)
	triangles, _ := lowpoly.Triangulate(points, width, height, true)

	r, _ := lowpoly.NewRenderer(lowpoly.ModeColor, lowpoly.StyleFill, 1)
	img := r.Render(triangles, src)

Example to output the result as SVG:

	svg := &lowpoly.SVG{
		Title:     "Delaunay image triangulator",
		Mode:      p.ColorMode(),
		Style:     p.Style(),
		Thickness: p.Thickness,
	}
	if err := svg.Draw(w, triangles, srcImg); err != nil {
		fmt.Printf("Error on svg generation: %s", err.Error())
	}
*/
package lowpoly
