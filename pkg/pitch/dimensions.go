package pitch

import (
	"errors"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ErrDegenerateDimensions is returned when a dimension interval is empty or
// inverted. A zero-width interval would make every rescale divide by zero,
// so it is rejected at construction time rather than at transform time.
var ErrDegenerateDimensions = errors.New("degenerate pitch dimensions")

// Dimension is a closed numeric interval on one axis.
type Dimension struct {
	Min float64
	Max float64
}

// Validate checks the interval is non-degenerate (Min strictly below Max).
func (d Dimension) Validate() error {
	if d.Min >= d.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrDegenerateDimensions, d.Min, d.Max)
	}
	return nil
}

// Width returns the length of the interval.
func (d Dimension) Width() float64 {
	return d.Max - d.Min
}

// Reflect mirrors a coordinate about the midpoint of the interval.
func (d Dimension) Reflect(v float64) float64 {
	return d.Min + d.Max - v
}

// Rescale maps a coordinate from this interval onto the target interval
// with a linear transformation.
func (d Dimension) Rescale(v float64, to Dimension) float64 {
	return to.Min + (v-d.Min)/d.Width()*to.Width()
}

// Contains reports whether v lies inside the closed interval.
func (d Dimension) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// PitchDimensions is the playable rectangle of a coordinate system.
type PitchDimensions struct {
	X Dimension
	Y Dimension
}

// NewPitchDimensions builds a validated playable rectangle.
func NewPitchDimensions(x, y Dimension) (PitchDimensions, error) {
	pd := PitchDimensions{X: x, Y: y}
	return pd, pd.Validate()
}

// Validate checks both axes are non-degenerate.
func (pd PitchDimensions) Validate() error {
	if err := pd.X.Validate(); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := pd.Y.Validate(); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// Contains reports whether the point lies inside the playable rectangle.
func (pd PitchDimensions) Contains(p Point) bool {
	return pd.X.Contains(p.X) && pd.Y.Contains(p.Y)
}

// Envelope returns the rectangle as a simplefeatures envelope, for spatial
// checks and storage geometry.
func (pd PitchDimensions) Envelope() geom.Envelope {
	return geom.NewEnvelope(
		geom.XY{X: pd.X.Min, Y: pd.Y.Min},
		geom.XY{X: pd.X.Max, Y: pd.Y.Max},
	)
}
