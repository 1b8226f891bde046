package lowpoly

import (
	"image"
	"math"
)

type kernel []float64

var (
	sobelX = map[int]kernel{
		1: {
			0, 0, 0,
			-1, 0, 1,
			0, 0, 0,
		},
		3: {
			-1, 0, 1,
			-2, 0, 2,
			-1, 0, 1,
		},
	}

	sobelY = map[int]kernel{
		1: {
			0, -1, 0,
			0, 0, 0,
			0, 1, 0,
		},
		3: {
			-1, -2, -1,
			0, 0, 0,
			1, 2, 1,
		},
	}

	laplacian = map[int]kernel{
		1: {
			0, 1, 0,
			1, -4, 1,
			0, 1, 0,
		},
		3: {
			2, 0, 2,
			0, -8, 0,
			2, 0, 2,
		},
	}
)

// Sobel computes the gradient magnitude of a grayscale image as the equally
// weighted sum of the saturated absolute horizontal and vertical derivatives.
// Supported kernel sizes are 1 (no smoothing) and 3.
func Sobel(src *image.Gray, ksize int) *image.Gray {
	kx, ky := sobelX[ksize], sobelY[ksize]
	if kx == nil {
		kx, ky = sobelX[3], sobelY[3]
	}
	gx := convolutionFilter(kx, src)
	gy := convolutionFilter(ky, src)

	dst := image.NewGray(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	for i := range dst.Pix {
		ax := clamp(math.Abs(gx[i]), 0, 255)
		ay := clamp(math.Abs(gy[i]), 0, 255)
		dst.Pix[i] = uint8(clamp(math.RoundToEven(0.5*ax+0.5*ay), 0, 255))
	}
	return dst
}

// Laplacian computes the second derivative of a grayscale image.
// Negative responses saturate to zero. Supported kernel sizes are 1 and 3.
func Laplacian(src *image.Gray, ksize int) *image.Gray {
	k := laplacian[ksize]
	if k == nil {
		k = laplacian[3]
	}
	lap := convolutionFilter(k, src)

	dst := image.NewGray(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	for i := range dst.Pix {
		dst.Pix[i] = uint8(clamp(math.RoundToEven(lap[i]), 0, 255))
	}
	return dst
}
