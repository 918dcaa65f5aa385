// Package pitch defines the geometric vocabulary shared by every provider:
// points, pitch dimension bounds, and coordinate system descriptors.
package pitch

import (
	"fmt"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"
)

// Point is a 2D pitch position expressed in the units of some coordinate
// system. It is a plain value; records represent an unknown location with a
// nil *Point rather than a sentinel value.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the euclidean distance between two points. Both points
// must be expressed in the same coordinate system for the result to mean
// anything.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// XY converts the point to a simplefeatures coordinate pair for use in
// geometry construction (storage WKT, line strings).
func (p Point) XY() geom.XY {
	return geom.XY{X: p.X, Y: p.Y}
}

// AsGeometry converts the point to a simplefeatures point.
func (p Point) AsGeometry() geom.Point {
	return geom.NewPoint(geom.Coordinates{XY: p.XY(), Type: geom.DimXY})
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
