package lowpoly

import (
	"math"
	"math/big"
)

// smallInt bounds the coordinates evaluated with int64 arithmetic. Below it the
// in-circle determinant stays far from overflowing; above it big.Rat is used.
const smallInt = 1 << 13

func isSmallInt(v float64) bool {
	return v == math.Trunc(v) && math.Abs(v) < smallInt
}

func allSmallInt(pts ...Point) bool {
	for _, p := range pts {
		if !isSmallInt(p.Row) || !isSmallInt(p.Col) {
			return false
		}
	}
	return true
}

func allFinite(pts ...Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.Row) || math.IsInf(p.Row, 0) || math.IsNaN(p.Col) || math.IsInf(p.Col, 0) {
			return false
		}
	}
	return true
}

func sign64(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// orientation returns the exact sign of the cross product (b-a) x (c-a):
// 0 for collinear points, otherwise +1 or -1 depending on the winding.
func orientation(a, b, c Point) int {
	if !allFinite(a, b, c) {
		return 0
	}
	if allSmallInt(a, b, c) {
		ax, ay := int64(a.Row), int64(a.Col)
		bx, by := int64(b.Row), int64(b.Col)
		cx, cy := int64(c.Row), int64(c.Col)

		return sign64((bx-ax)*(cy-ay) - (by-ay)*(cx-ax))
	}

	ax, ay := rat(a.Row), rat(a.Col)
	abx := new(big.Rat).Sub(rat(b.Row), ax)
	aby := new(big.Rat).Sub(rat(b.Col), ay)
	acx := new(big.Rat).Sub(rat(c.Row), ax)
	acy := new(big.Rat).Sub(rat(c.Col), ay)

	l := new(big.Rat).Mul(abx, acy)
	r := new(big.Rat).Mul(aby, acx)
	return l.Cmp(r)
}

// inCircle returns the exact sign of the in-circle determinant of p relative to
// the circle through a, b and c. For counterclockwise a, b, c it is positive when
// p is inside the circle, zero when p is on it and negative outside.
func inCircle(a, b, c, p Point) int {
	if allSmallInt(a, b, c, p) {
		adx, ady := int64(a.Row)-int64(p.Row), int64(a.Col)-int64(p.Col)
		bdx, bdy := int64(b.Row)-int64(p.Row), int64(b.Col)-int64(p.Col)
		cdx, cdy := int64(c.Row)-int64(p.Row), int64(c.Col)-int64(p.Col)

		al := adx*adx + ady*ady
		bl := bdx*bdx + bdy*bdy
		cl := cdx*cdx + cdy*cdy

		det := adx*(bdy*cl-bl*cdy) - ady*(bdx*cl-bl*cdx) + al*(bdx*cdy-bdy*cdx)
		return sign64(det)
	}

	px, py := rat(p.Row), rat(p.Col)
	sub := func(v, w *big.Rat) *big.Rat { return new(big.Rat).Sub(v, w) }
	mul := func(v, w *big.Rat) *big.Rat { return new(big.Rat).Mul(v, w) }
	add := func(v, w *big.Rat) *big.Rat { return new(big.Rat).Add(v, w) }

	adx, ady := sub(rat(a.Row), px), sub(rat(a.Col), py)
	bdx, bdy := sub(rat(b.Row), px), sub(rat(b.Col), py)
	cdx, cdy := sub(rat(c.Row), px), sub(rat(c.Col), py)

	al := add(mul(adx, adx), mul(ady, ady))
	bl := add(mul(bdx, bdx), mul(bdy, bdy))
	cl := add(mul(cdx, cdx), mul(cdy, cdy))

	det := mul(adx, sub(mul(bdy, cl), mul(bl, cdy)))
	det = sub(det, mul(ady, sub(mul(bdx, cl), mul(bl, cdx))))
	det = add(det, mul(al, sub(mul(bdx, cdy), mul(bdy, cdx))))
	return det.Sign()
}

func rat(v float64) *big.Rat {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return new(big.Rat)
	}
	return r
}
