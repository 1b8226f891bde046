package lowpoly

import "math"

// Point is a pixel space coordinate expressed as (row, column).
type Point struct {
	Row, Col float64
}

// less orders points lexicographically, first by row then by column.
func (p Point) less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Edge is an unordered pair of points. The endpoints are stored in canonical
// order, so two edges with the same endpoints compare equal with == and can
// be used as map keys regardless of the order they were created with.
type Edge struct {
	A, B Point
}

// NewEdge creates a new edge between a and b.
func NewEdge(a, b Point) Edge {
	if b.less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Circle describes the circumscribed circle of a triangle.
type Circle struct {
	Center   Point
	Radius   float64
	radiusSq float64
}

// Circumcircle returns the circle passing through the three points.
// The center is the intersection of the perpendicular bisectors, computed with the
// determinant formula. Collinear points have no such circle and ErrDegenerateGeometry is returned.
func Circumcircle(p0, p1, p2 Point) (Circle, error) {
	if orientation(p0, p1, p2) == 0 {
		return Circle{}, ErrDegenerateGeometry
	}
	ax, ay := p0.Row, p0.Col
	bx, by := p1.Row, p1.Col
	cx, cy := p2.Row, p2.Col

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return Circle{}, ErrDegenerateGeometry
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	center := Point{
		Row: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Col: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}
	if math.IsNaN(center.Row) || math.IsNaN(center.Col) ||
		math.IsInf(center.Row, 0) || math.IsInf(center.Col, 0) {
		return Circle{}, ErrDegenerateGeometry
	}

	dx, dy := ax-center.Row, ay-center.Col
	rsq := dx*dx + dy*dy

	return Circle{Center: center, Radius: math.Sqrt(rsq), radiusSq: rsq}, nil
}

// Contains reports whether p lies inside the circle or on its circumference.
func (c Circle) Contains(p Point) bool {
	dx := c.Center.Row - p.Row
	dy := c.Center.Col - p.Col

	return dx*dx+dy*dy <= c.radiusSq
}

// Triangle is built from three non collinear vertices and caches its circumcircle.
type Triangle struct {
	vertices [3]Point
	circle   Circle
	orient   int
}

// NewTriangle creates a new triangle. Collinear vertices return ErrDegenerateGeometry.
func NewTriangle(p0, p1, p2 Point) (Triangle, error) {
	circle, err := Circumcircle(p0, p1, p2)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{
		vertices: [3]Point{p0, p1, p2},
		circle:   circle,
		orient:   orientation(p0, p1, p2),
	}, nil
}

// Vertices returns the triangle nodes in construction order.
func (t Triangle) Vertices() [3]Point {
	return t.vertices
}

// Circumcircle returns the circle passing through the three vertices.
func (t Triangle) Circumcircle() Circle {
	return t.circle
}

// CircumcircleContains reports whether p lies inside the triangle circumcircle or on
// its circumference. Unlike Circle.Contains the test is exact: it evaluates the sign of
// the in-circle determinant and never suffers from rounding on cocircular points.
func (t Triangle) CircumcircleContains(p Point) bool {
	v := t.vertices
	return inCircle(v[0], v[1], v[2], p)*t.orient >= 0
}

// Covers reports whether p lies inside the triangle or on one of its edges.
// The test is exact.
func (t Triangle) Covers(p Point) bool {
	v := t.vertices
	return orientation(v[0], v[1], p)*t.orient >= 0 &&
		orientation(v[1], v[2], p)*t.orient >= 0 &&
		orientation(v[2], v[0], p)*t.orient >= 0
}

// Edges returns the edges formed consecutively from the vertex list.
func (t Triangle) Edges() [3]Edge {
	v := t.vertices
	return [3]Edge{
		NewEdge(v[0], v[1]),
		NewEdge(v[1], v[2]),
		NewEdge(v[2], v[0]),
	}
}

// ContainsVertex reports whether p is one of the triangle nodes.
func (t Triangle) ContainsVertex(p Point) bool {
	return t.vertices[0] == p || t.vertices[1] == p || t.vertices[2] == p
}

// ContainsEdge reports whether e is one of the triangle edges.
func (t Triangle) ContainsEdge(e Edge) bool {
	for _, edge := range t.Edges() {
		if edge == e {
			return true
		}
	}
	return false
}

// Area returns the (unsigned) triangle area.
func (t Triangle) Area() float64 {
	v := t.vertices
	cross := (v[1].Row-v[0].Row)*(v[2].Col-v[0].Col) - (v[1].Col-v[0].Col)*(v[2].Row-v[0].Row)
	return math.Abs(cross) / 2
}
