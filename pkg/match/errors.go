package match

import "errors"

var (
	// ErrOrphanedRecord is returned when a relation lookup is attempted on
	// a record that is detached from its originating dataset.
	ErrOrphanedRecord = errors.New("record is detached from its dataset")

	// ErrUnknownRecord is returned when a record identifier does not exist
	// in the dataset's index.
	ErrUnknownRecord = errors.New("unknown record id")

	// ErrDuplicateRecord is returned when two records in one dataset share
	// an identifier.
	ErrDuplicateRecord = errors.New("duplicate record id")
)
