package lowpoly

import "image"

// Supported edge detection algorithms.
const (
	DetectorSobel     = "sobel"
	DetectorLaplacian = "laplacian"
)

// Detectors lists the accepted edge detector names.
var Detectors = []string{DetectorSobel, DetectorLaplacian}

// newDetector returns the edge detection filter registered under name.
func newDetector(name string, ksize int) (Filter, error) {
	if ksize != 1 && ksize != 3 {
		return nil, &ConfigError{Field: "kernel", Value: ksize, Reason: "must be 1 or 3"}
	}
	switch name {
	case DetectorSobel:
		return SobelFilter{KernelSize: ksize}, nil
	case DetectorLaplacian:
		return LaplacianFilter{KernelSize: ksize}, nil
	}
	return nil, &ConfigError{Field: "detector", Value: name, Reason: "unknown edge detection algorithm"}
}

// EdgeMap runs the blur, grayscale and edge detection filters over the source image
// and returns the intensity map consumed by GetEdgePoints.
func EdgeMap(src image.Image, blurSize int, detector string, ksize int) (*image.Gray, error) {
	edge, err := newDetector(detector, ksize)
	if err != nil {
		return nil, err
	}
	pipeline := NewPipeline(
		BlurFilter{Size: blurSize},
		GrayscaleFilter{},
		edge,
	)
	return toGray(pipeline.Apply(src)), nil
}
