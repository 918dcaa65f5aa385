// Package geo converts pitch and venue coordinates into simplefeatures
// geometries for storage. Venue locations arrive as WGS84 degrees and are
// stored projected to 3857 so SQLite, which has no spatial awareness, can
// round-trip them as plain text.
package geo

import (
	"errors"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"

	"github.com/pitchkit/pitchkit/pkg/pitch"
)

// ErrEmptyLine is returned when a line string is requested for fewer than
// two points.
var ErrEmptyLine = errors.New("line string needs at least two points")

// VenuePoint3857 projects a WGS84 venue location to a 3857 point.
func VenuePoint3857(longitude, latitude float64) geom.Point {
	f := wgs84.EPSG().Transform(4326, 3857)
	x, y, _ := f(longitude, latitude, 0)
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: x, Y: y},
		Type: geom.DimXY,
	})
}

// PointWKT renders a pitch point as WKT.
func PointWKT(p pitch.Point) string {
	return p.AsGeometry().AsText()
}

// LineWKT renders an ordered series of pitch points as a WKT line string.
// Used for ball or player trajectories assembled from consecutive records.
func LineWKT(points []pitch.Point) (string, error) {
	if len(points) < 2 {
		return "", ErrEmptyLine
	}
	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	seq := geom.NewSequence(flat, geom.DimXY)
	ls := geom.NewLineString(seq)
	return ls.AsText(), nil
}
