package lowpoly

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDegenerateGeometry is returned when a circumcircle or a triangle
// is requested for three collinear (or coincident) points.
var ErrDegenerateGeometry = errors.New("degenerate geometry: collinear points")

// ConfigError reports an option outside of its documented range.
// It is always returned before any image processing takes place.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// InsertError aborts a triangulation run and names the point which could not be inserted.
type InsertError struct {
	Index int
	Point Point
	Err   error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("cannot insert point #%d (%v, %v): %v", e.Index, e.Point.Row, e.Point.Col, e.Err)
}

// Cause implements the causer interface used by errors.Cause.
func (e *InsertError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *InsertError) Unwrap() error { return e.Err }

var (
	errPointNotFinite   = errors.New("coordinates are not finite")
	errPointOutOfBounds = errors.New("point lies outside of the image bounds")
)
