package lowpoly

import (
	"log/slog"
	"math"
)

// Delaunay defines the main components of the Bowyer-Watson triangulation.
type Delaunay struct {
	width     int
	height    int
	corners   [4]Point
	triangles []Triangle
}

// Triangulate runs the complete triangulation over the points, inserted in the given order.
// The returned mesh covers the [0, height-1] x [0, width-1] rectangle. With deleteBorder set
// every triangle touching one of the rectangle corners is removed from the result.
func Triangulate(points []Point, width, height int, deleteBorder bool) ([]Triangle, error) {
	if width < 2 || height < 2 {
		return nil, &ConfigError{Field: "bounds", Value: [2]int{width, height}, Reason: "width and height must be at least 2"}
	}
	d := &Delaunay{}
	if err := d.Init(width, height).Insert(points); err != nil {
		return nil, err
	}
	if deleteBorder {
		d.RemoveBorder()
	}
	return d.Triangles(), nil
}

// Init initializes the triangulation with the super structure: two triangles
// covering the whole image, split along the bottom-left to top-right diagonal.
func (d *Delaunay) Init(width, height int) *Delaunay {
	d.width = width
	d.height = height

	h, w := float64(height-1), float64(width-1)
	d.corners = [4]Point{
		{Row: 0, Col: 0},
		{Row: h, Col: 0},
		{Row: h, Col: w},
		{Row: 0, Col: w},
	}

	a, b, c, e := d.corners[0], d.corners[1], d.corners[2], d.corners[3]
	d.triangles = nil
	for _, vertices := range [][3]Point{{a, b, e}, {b, c, e}} {
		t, err := NewTriangle(vertices[0], vertices[1], vertices[2])
		if err != nil {
			// Only a one pixel wide image collapses the super structure.
			continue
		}
		d.triangles = append(d.triangles, t)
	}
	return d
}

// Insert adds the points to the triangulation one by one.
// The first point which cannot be inserted aborts the run with an *InsertError.
func (d *Delaunay) Insert(points []Point) error {
	for i, p := range points {
		if err := d.validate(p); err != nil {
			return &InsertError{Index: i, Point: p, Err: err}
		}
		d.triangles = insertPoint(d.triangles, p)
	}
	return nil
}

// RemoveBorder deletes every triangle sharing a vertex with the super structure corners.
func (d *Delaunay) RemoveBorder() {
	kept := make([]Triangle, 0, len(d.triangles))
	for _, t := range d.triangles {
		if !d.touchesCorner(t) {
			kept = append(kept, t)
		}
	}
	d.triangles = kept
}

// Triangles returns the generated triangles.
func (d *Delaunay) Triangles() []Triangle {
	return d.triangles
}

func (d *Delaunay) touchesCorner(t Triangle) bool {
	for _, c := range d.corners {
		if t.ContainsVertex(c) {
			return true
		}
	}
	return false
}

func (d *Delaunay) validate(p Point) error {
	if math.IsNaN(p.Row) || math.IsNaN(p.Col) || math.IsInf(p.Row, 0) || math.IsInf(p.Col, 0) {
		return errPointNotFinite
	}
	if p.Row < 0 || p.Col < 0 || p.Row > float64(d.height-1) || p.Col > float64(d.width-1) {
		return errPointOutOfBounds
	}
	return nil
}

// insertPoint is a single Bowyer-Watson step. It never modifies the input slice;
// the triangles invalidated by p are replaced with a fan around p in a new slice.
func insertPoint(triangles []Triangle, p Point) []Triangle {
	var (
		bad  []Triangle
		good = make([]Triangle, 0, len(triangles)+2)
	)
	for _, t := range triangles {
		if t.CircumcircleContains(p) {
			bad = append(bad, t)
		} else {
			good = append(good, t)
		}
	}

	for _, edge := range cavityBoundary(bad) {
		t, err := NewTriangle(edge.A, edge.B, p)
		if err != nil {
			// p is collinear with the edge: the triangle would have no area.
			Logger().Debug("degenerate triangle dropped",
				slog.Any("edge", edge),
				slog.Any("point", p),
			)
			continue
		}
		good = append(good, t)
	}
	return good
}

// cavityBoundary returns the edges belonging to exactly one of the bad triangles.
// Edges shared by two bad triangles are inside the cavity and are discarded.
// The order follows the triangles and then their edges, so the result is deterministic.
func cavityBoundary(bad []Triangle) []Edge {
	count := make(map[Edge]int, len(bad)*3)
	for _, t := range bad {
		for _, e := range t.Edges() {
			count[e]++
		}
	}

	polygon := make([]Edge, 0, len(count))
	for _, t := range bad {
		for _, e := range t.Edges() {
			if count[e] == 1 {
				polygon = append(polygon, e)
			}
		}
	}
	return polygon
}
