// Package storage persists normalized datasets. Backends share one
// interface; the factory selects the implementation from configuration.
package storage

import "github.com/pitchkit/pitchkit/pkg/match"

// Backend is the interface all storage implementations must satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// SaveDataset persists the dataset as it currently stands: records,
	// metadata, and any attached state snapshots.
	SaveDataset(ds *match.Dataset) error
}

// Exportable is an optional interface for backends that produce a file
// suitable for downstream consumers.
type Exportable interface {
	ExportedFilePath() string
}
