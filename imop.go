package lowpoly

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/exp/constraints"
)

// Grayscale converts the image to a single channel luma image.
func Grayscale(src image.Image) *image.Gray {
	img := ImgToNRGBA(src)
	b := img.Bounds()
	dst := image.NewGray(b)

	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(0, y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := float64(img.Pix[si]), float64(img.Pix[si+1]), float64(img.Pix[si+2])
			lum := r*0.299 + g*0.587 + bl*0.114
			dst.Pix[di] = uint8(clamp(math.Round(lum), 0, 255))
			si += 4
			di++
		}
	}
	return dst
}

// toGray returns the image as *image.Gray with min-point at (0, 0),
// converting it only when necessary.
func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return g
	}
	return Grayscale(src)
}

// ImgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func ImgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.Gray:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := src.Pix[si]
				dst.Pix[di+0] = c
				dst.Pix[di+1] = c
				dst.Pix[di+2] = c
				dst.Pix[di+3] = 0xff
				di += 4
				si++
			}
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// GaussianBlur smooths the color channels of the image with a square Gaussian kernel.
// The kernel size must be odd; a size of 1 returns an unmodified copy.
// Sigma is derived from the kernel size and the borders are reflected (without repeating the edge pixel).
func GaussianBlur(src image.Image, size int) *image.NRGBA {
	img := ImgToNRGBA(src)
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	dst := image.NewNRGBA(b)
	copy(dst.Pix, img.Pix)
	if size <= 1 || width == 0 || height == 0 {
		return dst
	}

	kernel := gaussianKernel(size)
	for c := 0; c < 3; c++ {
		channel := make([]float64, width*height)
		for i := range channel {
			channel[i] = float64(img.Pix[i*4+c])
		}
		channel = convolveSeparable(channel, width, height, kernel, kernel)
		for i, v := range channel {
			dst.Pix[i*4+c] = uint8(clamp(math.Round(v), 0, 255))
		}
	}
	return dst
}

// gaussianKernel returns a normalized 1D Gaussian kernel, using the
// sigma = 0.3*((size-1)*0.5 - 1) + 0.8 rule for the given kernel size.
func gaussianKernel(size int) []float64 {
	var (
		sigma  = 0.3*(float64(size-1)*0.5-1) + 0.8
		half   = float64(size-1) * 0.5
		kernel = make([]float64, size)
		sum    float64
	)
	for i := range kernel {
		x := float64(i) - half
		kernel[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// convolveSeparable applies the horizontal kernel kx followed by the vertical kernel ky
// over a single channel stored in row-major order.
func convolveSeparable(data []float64, width, height int, kx, ky []float64) []float64 {
	tmp := make([]float64, len(data))
	out := make([]float64, len(data))
	rx, ry := len(kx)/2, len(ky)/2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float64
			for k := -rx; k <= rx; k++ {
				sum += data[row+reflect101(x+k, width)] * kx[k+rx]
			}
			tmp[row+x] = sum
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for k := -ry; k <= ry; k++ {
				sum += tmp[reflect101(y+k, height)*width+x] * ky[k+ry]
			}
			out[y*width+x] = sum
		}
	}
	return out
}

// convolutionFilter applies a square matrix over a single channel of the image
// and returns the raw (unclamped) responses.
func convolutionFilter(matrix []float64, img *image.Gray) []float64 {
	var (
		b      = img.Bounds()
		width  = b.Dx()
		height = b.Dy()
		size   = int(math.Sqrt(float64(len(matrix))))
		dim    = size / 2
		out    = make([]float64, width*height)
	)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for row := -dim; row <= dim; row++ {
				sy := reflect101(y+row, height)
				kstep := (row + dim) * size
				for col := -dim; col <= dim; col++ {
					sx := reflect101(x+col, width)
					sum += float64(img.Pix[img.PixOffset(b.Min.X+sx, b.Min.Y+sy)]) * matrix[kstep+col+dim]
				}
			}
			out[y*width+x] = sum
		}
	}
	return out
}

// reflect101 maps an out of range index back into [0, n) mirroring
// around the edge pixels without repeating them (gfedcb|abcdefgh|gfedcba).
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

// Min returns the smallest value between two numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}
