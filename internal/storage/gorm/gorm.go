// Package gormstorage writes datasets through a GORM connection. The SQLite
// and Postgres backends compose it; only connection setup differs between
// them.
package gormstorage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pitchkit/pitchkit/internal/model"
	"github.com/pitchkit/pitchkit/internal/model/convert"
	"github.com/pitchkit/pitchkit/pkg/match"
)

// Backend persists datasets to a relational database.
type Backend struct {
	db  *gorm.DB
	log zerolog.Logger
}

// New creates a GORM-backed storage writer.
func New(db *gorm.DB, log zerolog.Logger) *Backend {
	return &Backend{db: db, log: log}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	b.log.Info().Msg("Database schema migrated")
	return nil
}

// Close releases the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}

// SaveDataset writes the match, rosters, periods, and every record inside
// one transaction, so a failed run leaves no partial match behind.
func (b *Backend) SaveDataset(ds *match.Dataset) error {
	start := time.Now()

	err := b.db.Transaction(func(tx *gorm.DB) error {
		matchRow := convert.ToMatch(ds)
		if err := tx.Create(&matchRow).Error; err != nil {
			return fmt.Errorf("error creating match row: %w", err)
		}

		teams, rosters := convert.ToTeams(ds.Metadata)
		for i := range teams {
			teams[i].MatchRowID = matchRow.ID
			if err := tx.Create(&teams[i]).Error; err != nil {
				return fmt.Errorf("error creating team row: %w", err)
			}
			for j := range rosters[i] {
				rosters[i][j].MatchRowID = matchRow.ID
				rosters[i][j].TeamRowID = teams[i].ID
			}
			if len(rosters[i]) > 0 {
				if err := tx.Create(&rosters[i]).Error; err != nil {
					return fmt.Errorf("error creating player rows: %w", err)
				}
			}
		}

		periods := convert.ToPeriods(ds.Metadata)
		for i := range periods {
			periods[i].MatchRowID = matchRow.ID
		}
		if len(periods) > 0 {
			if err := tx.Create(&periods).Error; err != nil {
				return fmt.Errorf("error creating period rows: %w", err)
			}
		}

		records := make([]model.RecordRow, 0, ds.Len())
		for i, rec := range ds.Records() {
			row, err := convert.ToRecord(rec, i)
			if err != nil {
				return fmt.Errorf("record %q: %w", rec.RecordID(), err)
			}
			row.MatchRowID = matchRow.ID
			records = append(records, row)
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("error creating record rows: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	b.log.Info().
		Str("matchId", ds.Metadata.MatchID).
		Int("records", ds.Len()).
		Dur("duration", time.Since(start)).
		Msg("Dataset saved")

	return nil
}
