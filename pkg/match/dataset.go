package match

import (
	"fmt"

	"github.com/pitchkit/pitchkit/pkg/pitch"
)

// DatasetType distinguishes event streams from tracking streams.
type DatasetType uint8

const (
	DatasetTypeEvent DatasetType = iota
	DatasetTypeTracking
)

func (t DatasetType) String() string {
	if t == DatasetTypeTracking {
		return "tracking"
	}
	return "event"
}

// Metadata describes the match and the conventions its records follow.
// Every record in a dataset shares the metadata's coordinate system and
// orientation.
type Metadata struct {
	MatchID          string
	Home             *Team
	Away             *Team
	Periods          []*Period
	Provider         pitch.Provider
	CoordinateSystem pitch.CoordinateSystem
	Orientation      Orientation
	FrameRate        float64 // tracking only, frames per second
	Score            Score
	Venue            *Venue
}

// Team returns the side with the given ground.
func (m *Metadata) Team(g Ground) *Team {
	if g == GroundHome {
		return m.Home
	}
	return m.Away
}

// Period returns the period with the given id, or nil.
func (m *Metadata) Period(id int) *Period {
	for _, p := range m.Periods {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Dataset is an ordered sequence of records plus the metadata describing
// their shared conventions. Datasets are immutable: transformations and
// state passes produce new datasets.
type Dataset struct {
	Type     DatasetType
	Metadata Metadata

	records []Record
	byID    map[string]Record
}

// NewDataset builds a dataset, validates the coordinate system's own
// invariants, indexes the records, and attaches them for relation lookups.
func NewDataset(t DatasetType, md Metadata, records []Record) (*Dataset, error) {
	if err := md.CoordinateSystem.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("dataset coordinate system: %w", err)
	}
	d := &Dataset{
		Type:     t,
		Metadata: md,
		records:  records,
		byID:     make(map[string]Record, len(records)),
	}
	for _, rec := range records {
		id := rec.RecordID()
		if _, exists := d.byID[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRecord, id)
		}
		d.byID[id] = rec
		rec.attachTo(d)
	}
	return d, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the ordered record sequence. Callers must treat it as
// read-only; mutation happens only through Transform/AddState copies.
func (d *Dataset) Records() []Record {
	return d.records
}

// Record returns the i-th record in order.
func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// RecordByID resolves a record through the dataset index.
func (d *Dataset) RecordByID(id string) (Record, error) {
	rec, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecord, id)
	}
	return rec, nil
}

// Events returns the records that are events, in order. For event datasets
// this is every record.
func (d *Dataset) Events() []Event {
	out := make([]Event, 0, len(d.records))
	for _, rec := range d.records {
		if ev, ok := rec.(Event); ok {
			out = append(out, ev)
		}
	}
	return out
}
