// Package state computes derived, time-varying match state (running score,
// possession sequence, lineup, formation) and attaches an immutable
// snapshot of it to every record, so consumers never replay history
// themselves.
//
// The pass is a strictly sequential left-to-right fold: builders may depend
// on full ordering and are advanced exactly once per record. Snapshots
// include the record's own effect, the way a running score includes the
// goal that was just scored.
package state

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pitchkit/pitchkit/pkg/match"
)

var (
	// ErrUnknownBuilder is returned for a key with no registered builder.
	ErrUnknownBuilder = errors.New("unknown state builder")

	// ErrDuplicateBuilder is returned when the same key is requested twice
	// in one call.
	ErrDuplicateBuilder = errors.New("duplicate state builder key")
)

// Builder folds over the record sequence. InitialState builds the context
// before any record; Reduce advances it for one record and returns the
// state as of having processed that record. Returned values are attached to
// records as snapshots and must be treated as immutable: a builder that
// keeps reference types copies them on change.
type Builder interface {
	InitialState(ds *match.Dataset) any
	Reduce(state any, rec match.Record) any
}

// Registry maps builder keys to implementations. Callers can pass their own
// registry to AddStateWith; AddState uses DefaultRegistry.
type Registry map[string]Builder

// DefaultRegistry returns the builders shipped with the library.
func DefaultRegistry() Registry {
	return Registry{
		"score":     ScoreBuilder{},
		"sequence":  SequenceBuilder{},
		"lineup":    LineupBuilder{},
		"formation": FormationBuilder{},
	}
}

// AddState attaches state snapshots for the named builders from the default
// registry. Unknown or repeated keys fail before any record is touched, so
// the caller never observes a partially annotated dataset.
func AddState(ds *match.Dataset, keys ...string) (*match.Dataset, error) {
	return AddStateKeys(ds, DefaultRegistry(), keys...)
}

// AddStateKeys is AddState against an explicit registry.
func AddStateKeys(ds *match.Dataset, reg Registry, keys ...string) (*match.Dataset, error) {
	builders := make(Registry, len(keys))
	order := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, seen := builders[key]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBuilder, key)
		}
		b, ok := reg[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuilder, key)
		}
		builders[key] = b
		order = append(order, key)
	}
	return addState(ds, builders, order)
}

// AddStateWith attaches state snapshots for every builder in the map.
func AddStateWith(ds *match.Dataset, builders Registry) (*match.Dataset, error) {
	if len(builders) == 0 {
		return nil, fmt.Errorf("%w: no builders given", ErrUnknownBuilder)
	}
	order := make([]string, 0, len(builders))
	for key := range builders {
		order = append(order, key)
	}
	sort.Strings(order)
	return addState(ds, builders, order)
}

// addState runs the single sequential pass. Each builder owns a private
// running context; no record is visited twice and no context is shared
// across goroutines.
func addState(ds *match.Dataset, builders Registry, order []string) (*match.Dataset, error) {
	current := make(map[string]any, len(builders))
	for key, b := range builders {
		current[key] = b.InitialState(ds)
	}

	records := make([]match.Record, ds.Len())
	for i, rec := range ds.Records() {
		snapshot := make(map[string]any, len(builders))
		for _, key := range order {
			current[key] = builders[key].Reduce(current[key], rec)
			snapshot[key] = current[key]
		}
		records[i] = rec.WithState(snapshot)
	}

	return match.NewDataset(ds.Type, ds.Metadata, records)
}
