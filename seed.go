package lowpoly

import (
	"image"
	"image/color"
)

// prng is a Park-Miller minimal standard generator. It always starts from the same
// seed, so the grain applied to an image is identical from one run to the other.
type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	return &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1,
		div:       1.0 / 0x7fffffff,
	}
}

// Noise applies a grain filter of the given strength over the image.
// The same offset is added to the three color channels of a pixel,
// so grayscale images remain grayscale.
func Noise(amount int, src image.Image) *image.NRGBA {
	img := ImgToNRGBA(src)
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	copy(dst.Pix, img.Pix)
	if amount <= 0 {
		return dst
	}

	rnd := newPrng()
	for x := 0; x < b.Dx(); x++ {
		for y := 0; y < b.Dy(); y++ {
			noise := (rnd.randomSeed() - 0.1) * float64(amount)
			c := img.NRGBAAt(x, y)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(clamp(float64(c.R)+noise, 0, 255)),
				G: uint8(clamp(float64(c.G)+noise, 0, 255)),
				B: uint8(clamp(float64(c.B)+noise, 0, 255)),
				A: c.A,
			})
		}
	}
	return dst
}

func (p *prng) nextLongRand(seed int) int {
	lo := p.a * (seed & 0xffff)
	hi := p.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > p.m {
		lo &= p.m
		lo++
	}
	lo += hi >> 15
	if lo > p.m {
		lo &= p.m
		lo++
	}
	return lo
}

func (p *prng) randomSeed() float64 {
	p.randomNum = p.nextLongRand(p.randomNum)
	return float64(p.randomNum) * p.div
}
