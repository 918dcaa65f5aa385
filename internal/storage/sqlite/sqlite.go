// Package sqlitestorage implements the storage.Backend interface on SQLite.
// With no path configured it runs in memory and dumps to disk at Close via
// VACUUM INTO; with a path it writes the file directly.
package sqlitestorage

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormstorage "github.com/pitchkit/pitchkit/internal/storage/gorm"
)

// Backend wraps the GORM writer with SQLite connection handling.
type Backend struct {
	*gormstorage.Backend
	db       *gorm.DB
	dumpPath string
	log      zerolog.Logger
}

// New creates a SQLite storage backend. An empty path selects the in-memory
// database with a dump to ./pitchkit.db at Close.
func New(log zerolog.Logger, path string) (*Backend, error) {
	dumpPath := ""
	dsn := path
	if path == "" {
		dsn = "file::memory:?cache=shared"
		dumpPath = "./pitchkit.db"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        2000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite DB: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}

	return &Backend{
		Backend:  gormstorage.New(db, log),
		db:       db,
		dumpPath: dumpPath,
		log:      log,
	}, nil
}

// Close dumps the in-memory database to disk, if applicable, then closes the
// connection.
func (b *Backend) Close() error {
	if b.dumpPath != "" {
		if err := b.dumpToDisk(); err != nil {
			return err
		}
	}
	return b.Backend.Close()
}

// ExportedFilePath is where the dumped database lands.
func (b *Backend) ExportedFilePath() string {
	return b.dumpPath
}

// dumpToDisk vacuums the in-memory database into the dump file. VACUUM INTO
// refuses to overwrite, so an existing file is removed first.
func (b *Backend) dumpToDisk() error {
	if _, err := os.Stat(b.dumpPath); err == nil {
		if err := os.Remove(b.dumpPath); err != nil {
			return fmt.Errorf("error removing existing DB file: %w", err)
		}
	}
	if err := b.db.Exec("VACUUM INTO 'file:" + b.dumpPath + "';").Error; err != nil {
		return fmt.Errorf("error dumping memory DB to disk: %w", err)
	}
	b.log.Debug().Str("path", b.dumpPath).Msg("Dumped memory DB to disk")
	return nil
}
