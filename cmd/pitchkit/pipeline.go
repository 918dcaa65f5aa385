package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pitchkit/pitchkit/internal/export"
	"github.com/pitchkit/pitchkit/internal/metrics"
	"github.com/pitchkit/pitchkit/internal/parser"
	"github.com/pitchkit/pitchkit/internal/storage"
	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
	"github.com/pitchkit/pitchkit/pkg/state"
	"github.com/pitchkit/pitchkit/pkg/transform"
)

// run executes the pipeline: parse -> transform -> state pass -> storage and
// export, reporting timings to the metrics sinks.
func run(log zerolog.Logger) error {
	ctx := context.Background()

	inputPath := viper.GetString("input.path")
	if inputPath == "" {
		return errors.New("no input file: set input.path or pass -input")
	}

	recorder, err := metrics.NewRecorder()
	if err != nil {
		return fmt.Errorf("error creating metrics recorder: %w", err)
	}

	influx := metrics.NewInfluxSink(log)
	if err := influx.Connect(ctx); err != nil {
		if !errors.Is(err, metrics.ErrInfluxDisabled) {
			log.Warn().Err(err).Msg("InfluxDB unavailable, continuing without performance sink")
		}
	} else {
		defer influx.Close()
	}

	// Parse
	parseStart := time.Now()
	ds, err := parser.New(log).ParseFile(inputPath)
	if err != nil {
		return err
	}
	parseElapsed := time.Since(parseStart)
	recorder.RecordParsed(ctx, string(ds.Metadata.Provider), ds.Len())
	log.Info().
		Str("matchId", ds.Metadata.MatchID).
		Str("provider", string(ds.Metadata.Provider)).
		Int("records", ds.Len()).
		Dur("duration", parseElapsed).
		Msg("Parsed input")

	// Transform
	var transformElapsed time.Duration
	opts, err := transformOptions()
	if err != nil {
		return err
	}
	if len(opts) > 0 {
		start := time.Now()
		ds, err = transform.Transform(ds, opts...)
		if err != nil {
			return err
		}
		transformElapsed = time.Since(start)
		recorder.RecordTransformed(ctx, string(ds.Metadata.Provider), ds.Len(), transformElapsed)
		log.Info().
			Str("provider", string(ds.Metadata.Provider)).
			Stringer("orientation", ds.Metadata.Orientation).
			Dur("duration", transformElapsed).
			Msg("Transformed dataset")
	}

	// State pass
	var stateElapsed time.Duration
	if builders := viper.GetStringSlice("state.builders"); len(builders) > 0 && ds.Type == match.DatasetTypeEvent {
		start := time.Now()
		ds, err = state.AddState(ds, builders...)
		if err != nil {
			return err
		}
		stateElapsed = time.Since(start)
		recorder.RecordStatePass(ctx, stateElapsed)
		log.Info().
			Strs("builders", builders).
			Dur("duration", stateElapsed).
			Msg("Attached state snapshots")
	}

	// Storage
	backend, err := storage.NewBackend(log)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	if err := backend.SaveDataset(ds); err != nil {
		_ = backend.Close()
		return err
	}
	if err := backend.Close(); err != nil {
		return err
	}
	if exp, ok := backend.(storage.Exportable); ok && exp.ExportedFilePath() != "" {
		log.Info().Str("path", exp.ExportedFilePath()).Msg("Backend export written")
	}

	// Tabular export
	if viper.GetString("export.format") == "csv" {
		if err := writeCSVExport(ds); err != nil {
			return err
		}
	}

	influx.WritePipelineRun(
		ds.Metadata.MatchID,
		string(ds.Metadata.Provider),
		ds.Len(),
		parseElapsed, transformElapsed, stateElapsed,
	)

	return nil
}

// transformOptions maps transform.* config keys to engine options. No keys
// set means no transform pass.
func transformOptions() ([]transform.Option, error) {
	var opts []transform.Option

	if name := viper.GetString("transform.provider"); name != "" {
		provider, err := pitch.ParseProvider(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, transform.WithProvider(provider))
	}
	if name := viper.GetString("transform.orientation"); name != "" {
		orientation, err := match.ParseOrientation(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, transform.WithOrientation(orientation))
	}

	return opts, nil
}

func writeCSVExport(ds *match.Dataset) error {
	outputDir := viper.GetString("export.outputDir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("error creating export directory: %w", err)
	}
	path := filepath.Join(outputDir, ds.Metadata.MatchID+".records.csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV export: %w", err)
	}
	defer file.Close()
	return export.WriteCSV(file, ds)
}
