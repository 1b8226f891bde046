package lowpoly

import "image"

// Filter is a single image operation of the edge detection pipeline.
type Filter interface {
	Apply(src image.Image) image.Image
}

// Pipeline implements a list of filters that can be applied to an image at once.
type Pipeline struct {
	Filters []Filter
}

// NewPipeline creates a new pipeline and initializes it with the given list of filters.
func NewPipeline(filters ...Filter) *Pipeline {
	return &Pipeline{
		Filters: filters,
	}
}

// Apply runs every filter in order, feeding each one with the output of the previous.
func (p *Pipeline) Apply(src image.Image) image.Image {
	img := src
	for _, f := range p.Filters {
		img = f.Apply(img)
	}
	return img
}

// BlurFilter applies a Gaussian blur with the given (odd) kernel size.
type BlurFilter struct {
	Size int
}

// Apply implements Filter.
func (f BlurFilter) Apply(src image.Image) image.Image {
	return GaussianBlur(src, f.Size)
}

// GrayscaleFilter converts the image to luma.
type GrayscaleFilter struct{}

// Apply implements Filter.
func (GrayscaleFilter) Apply(src image.Image) image.Image {
	return Grayscale(src)
}

// SobelFilter produces the Sobel gradient magnitude.
type SobelFilter struct {
	KernelSize int
}

// Apply implements Filter.
func (f SobelFilter) Apply(src image.Image) image.Image {
	return Sobel(toGray(src), f.KernelSize)
}

// LaplacianFilter produces the saturated Laplacian response.
type LaplacianFilter struct {
	KernelSize int
}

// Apply implements Filter.
func (f LaplacianFilter) Apply(src image.Image) image.Image {
	return Laplacian(toGray(src), f.KernelSize)
}
