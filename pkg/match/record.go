package match

import "github.com/pitchkit/pitchkit/pkg/pitch"

// Record is a single entry in a dataset: an event or a tracking frame.
//
// Records are immutable once constructed. WithState and MapCoordinates
// return modified copies; the originals are never touched. Both copies come
// back detached from any dataset until NewDataset attaches them.
type Record interface {
	// RecordID identifies the record within its dataset.
	RecordID() string
	// RecordTeam is the team associated with the record, nil when the
	// record has no executing team (tracking frames).
	RecordTeam() *Team
	// RecordPeriod is the playing period the record occurred in.
	RecordPeriod() *Period
	// RecordTimestamp is seconds since the period started.
	RecordTimestamp() float64
	// OwningTeam is the team in possession at the record, nil when the
	// source data does not carry possession context.
	OwningTeam() *Team
	// RecordCoordinates is the record's primary location, nil when unknown.
	RecordCoordinates() *pitch.Point

	// State returns the derived-state value attached under key, if any.
	State(key string) (any, bool)
	// States returns a copy of the full state mapping.
	States() map[string]any

	// WithState returns a copy with the given state values merged in.
	WithState(states map[string]any) Record
	// MapCoordinates returns a copy with fn applied to every spatial
	// attribute the record carries. A nil coordinate stays nil.
	MapCoordinates(fn func(pitch.Point) pitch.Point) Record

	attachTo(d *Dataset)
}

// mapPoint applies fn to an optional point, keeping absence intact.
func mapPoint(p *pitch.Point, fn func(pitch.Point) pitch.Point) *pitch.Point {
	if p == nil {
		return nil
	}
	q := fn(*p)
	return &q
}

// mergedStates builds a fresh state map from the existing values plus the
// new ones. The result is never shared with the inputs so attached
// snapshots stay immutable.
func mergedStates(old, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(old)+len(extra))
	for k, v := range old {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
