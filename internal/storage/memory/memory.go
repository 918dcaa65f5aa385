// Package memorystorage holds saved datasets in memory and exports them as
// (optionally gzipped) JSON row files at Close.
package memorystorage

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pitchkit/pitchkit/internal/export"
	"github.com/pitchkit/pitchkit/pkg/match"
)

// Config holds memory backend settings.
type Config struct {
	OutputDir      string
	CompressOutput bool
}

// Backend keeps datasets in memory until Close exports them.
type Backend struct {
	cfg Config
	log zerolog.Logger

	mu       sync.Mutex
	datasets []*match.Dataset
	exported string
}

// New creates a memory backend.
func New(log zerolog.Logger, cfg Config) *Backend {
	return &Backend{cfg: cfg, log: log}
}

// Init creates the output directory.
func (b *Backend) Init() error {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	return nil
}

// SaveDataset retains the dataset for export.
func (b *Backend) SaveDataset(ds *match.Dataset) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.datasets = append(b.datasets, ds)
	return nil
}

// Close exports every saved dataset to a JSON row file.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ds := range b.datasets {
		path, err := b.exportDataset(ds)
		if err != nil {
			return err
		}
		b.exported = path
		b.log.Info().Str("path", path).Str("matchId", ds.Metadata.MatchID).
			Msg("Dataset exported")
	}
	return nil
}

// ExportedFilePath is the path of the last exported file.
func (b *Backend) ExportedFilePath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exported
}

func (b *Backend) exportDataset(ds *match.Dataset) (string, error) {
	name := ds.Metadata.MatchID + ".records.json"
	if b.cfg.CompressOutput {
		name += ".gz"
	}
	path := filepath.Join(b.cfg.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating export file: %w", err)
	}
	defer file.Close()

	if b.cfg.CompressOutput {
		gz := gzip.NewWriter(file)
		if err := export.WriteJSON(gz, ds); err != nil {
			return "", err
		}
		if err := gz.Close(); err != nil {
			return "", fmt.Errorf("error closing gzip writer: %w", err)
		}
		return path, nil
	}

	if err := export.WriteJSON(file, ds); err != nil {
		return "", err
	}
	return path, nil
}
