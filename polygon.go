package lowpoly

import (
	"image"
	"math"
)

// sampleOffset is added to the signed reinterpretation of every intensity sample
// before it is compared with the threshold.
const sampleOffset = 127

// GetEdgePoints retrieves the triangle points from the edge intensity map.
//
// The map is scanned in row-major order and a pixel is kept when its sample, read as
// a signed byte, plus 127 reaches the threshold. When more than maxPoints pixels
// qualify, the list is downsampled with a constant real valued stride, which keeps
// the scan order but does not guarantee exactly maxPoints results.
// A maxPoints of zero or less means no cap: every qualifying pixel is returned.
// Processor.Validate rejects such a value before the pipeline runs.
func GetEdgePoints(img *image.Gray, threshold, maxPoints int) []Point {
	b := img.Bounds()
	points := make([]Point, 0)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if int(int8(row[x]))+sampleOffset >= threshold {
				points = append(points, Point{Row: float64(y - b.Min.Y), Col: float64(x)})
			}
		}
	}

	size := len(points)
	if size <= maxPoints || maxPoints <= 0 {
		return points
	}

	stride := float64(size) / float64(maxPoints)
	dpoints := make([]Point, 0, maxPoints+1)
	for i := 0.0; i < float64(size); i += stride {
		dpoints = append(dpoints, points[int(math.Floor(i))])
	}
	return dpoints
}

// EdgePointsMask draws the sampled points as white pixels over a black image.
func EdgePointsMask(points []Point, width, height int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))
	for _, p := range points {
		x, y := int(p.Col), int(p.Row)
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		mask.Pix[mask.PixOffset(x, y)] = 0xff
	}
	return mask
}
