package transform

import (
	"errors"
	"fmt"

	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
)

var (
	// ErrNoTarget is returned when Transform is called without any target
	// parameter.
	ErrNoTarget = errors.New("transform needs at least one target parameter")

	// ErrConflictingTargets is returned when both a provider and an
	// explicit coordinate system are requested.
	ErrConflictingTargets = errors.New("provider and explicit coordinate system are mutually exclusive")
)

// Option selects a transform target.
type Option func(*options)

type options struct {
	provider    *pitch.Provider
	system      *pitch.CoordinateSystem
	orientation *match.Orientation
	dimensions  *pitch.PitchDimensions
}

// WithProvider targets a registered provider's coordinate system.
func WithProvider(p pitch.Provider) Option {
	return func(o *options) { o.provider = &p }
}

// WithCoordinateSystem targets an explicit coordinate system.
func WithCoordinateSystem(cs pitch.CoordinateSystem) Option {
	return func(o *options) { o.system = &cs }
}

// WithOrientation targets an attacking-direction convention.
func WithOrientation(or match.Orientation) Option {
	return func(o *options) { o.orientation = &or }
}

// WithPitchDimensions overrides the target playable rectangle. Without an
// explicit coordinate system this keeps the source's vertical and origin
// conventions and only rescales the rectangle.
func WithPitchDimensions(pd pitch.PitchDimensions) Option {
	return func(o *options) { o.dimensions = &pd }
}

// Transformer holds the per-dataset parameters of one transformation. It is
// stateless across records: each record's mapping depends only on the
// record itself.
type Transformer struct {
	fromSystem pitch.CoordinateSystem
	toSystem   pitch.CoordinateSystem
	toProvider pitch.Provider
	res        resolver

	// flipVertical is static for the whole dataset: it reconciles the two
	// systems' vertical conventions and is independent of any orientation
	// mirror.
	flipVertical bool
}

// NewTransformer resolves the requested targets against the dataset's
// source conventions. Configuration problems (no target, unknown provider,
// degenerate dimensions) surface here, before any record is touched.
func NewTransformer(md match.Metadata, opts ...Option) (*Transformer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider == nil && o.system == nil && o.orientation == nil && o.dimensions == nil {
		return nil, ErrNoTarget
	}
	if o.provider != nil && o.system != nil {
		return nil, ErrConflictingTargets
	}

	toSystem := md.CoordinateSystem
	toProvider := md.Provider
	switch {
	case o.provider != nil:
		cs, err := pitch.ForProvider(*o.provider)
		if err != nil {
			return nil, err
		}
		toSystem = cs
		toProvider = *o.provider
	case o.system != nil:
		toSystem = *o.system
		toProvider = ""
	}
	if o.dimensions != nil {
		toSystem.Dimensions = *o.dimensions
	}
	if err := toSystem.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("target coordinate system: %w", err)
	}
	if err := md.CoordinateSystem.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("source coordinate system: %w", err)
	}

	toOrientation := md.Orientation
	if o.orientation != nil {
		toOrientation = *o.orientation
	}

	return &Transformer{
		fromSystem:   md.CoordinateSystem,
		toSystem:     toSystem,
		toProvider:   toProvider,
		res:          resolver{from: md.Orientation, to: toOrientation},
		flipVertical: md.CoordinateSystem.Vertical != toSystem.Vertical,
	}, nil
}

// ToSystem is the coordinate system records are mapped into.
func (t *Transformer) ToSystem() pitch.CoordinateSystem {
	return t.toSystem
}

// ToOrientation is the orientation records are mapped into.
func (t *Transformer) ToOrientation() match.Orientation {
	return t.res.to
}

// pointMapper builds the per-record affine mapping. Order matters: the
// orientation mirror reflects about the source bounds, then each axis is
// rescaled into the target interval, then the vertical reconciliation
// reflects y about the target bounds. Reflecting after the rescale would
// use the wrong midpoint and shift every coordinate.
func (t *Transformer) pointMapper(mirror bool) func(pitch.Point) pitch.Point {
	from := t.fromSystem.Dimensions
	to := t.toSystem.Dimensions
	flipVertical := t.flipVertical
	return func(p pitch.Point) pitch.Point {
		x, y := p.X, p.Y
		if mirror {
			x = from.X.Reflect(x)
			y = from.Y.Reflect(y)
		}
		x = from.X.Rescale(x, to.X)
		y = from.Y.Rescale(y, to.Y)
		if flipVertical {
			y = to.Y.Reflect(y)
		}
		return pitch.Point{X: x, Y: y}
	}
}

// TransformRecord remaps a single record. All spatial attributes share one
// mirror decision because they describe the same physical moment.
func (t *Transformer) TransformRecord(rec match.Record) (match.Record, error) {
	mirror, err := t.res.needsMirror(rec)
	if err != nil {
		return nil, err
	}
	return rec.MapCoordinates(t.pointMapper(mirror)), nil
}

// Transform re-expresses the dataset under the requested targets and
// returns a new dataset; the input is never mutated. A record whose
// orientation cannot be resolved aborts the whole transform, so the output
// never mixes coordinate semantics.
func Transform(ds *match.Dataset, opts ...Option) (*match.Dataset, error) {
	t, err := NewTransformer(ds.Metadata, opts...)
	if err != nil {
		return nil, err
	}

	records := make([]match.Record, ds.Len())
	for i, rec := range ds.Records() {
		out, err := t.TransformRecord(rec)
		if err != nil {
			return nil, err
		}
		records[i] = out
	}

	md := ds.Metadata
	md.CoordinateSystem = t.ToSystem()
	md.Orientation = t.ToOrientation()
	md.Provider = t.toProvider
	return match.NewDataset(ds.Type, md, records)
}
