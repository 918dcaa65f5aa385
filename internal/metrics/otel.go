// Package metrics instruments the pipeline: OTel counters and histograms
// for in-process measurement, plus an optional InfluxDB sink for run-level
// performance points.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/pitchkit/pitchkit/internal/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder holds the pipeline instruments. A zero-value global meter
// provider makes every instrument a no-op, so construction never fails the
// pipeline.
type Recorder struct {
	recordsParsed      metric.Int64Counter
	recordsTransformed metric.Int64Counter
	transformDuration  metric.Float64Histogram
	statePassDuration  metric.Float64Histogram
}

// NewRecorder creates the pipeline instruments.
func NewRecorder() (*Recorder, error) {
	m := meter()

	recordsParsed, err := m.Int64Counter("pitchkit.records.parsed",
		metric.WithDescription("Records loaded from match files"))
	if err != nil {
		return nil, err
	}
	recordsTransformed, err := m.Int64Counter("pitchkit.records.transformed",
		metric.WithDescription("Records remapped by coordinate transforms"))
	if err != nil {
		return nil, err
	}
	transformDuration, err := m.Float64Histogram("pitchkit.transform.duration",
		metric.WithDescription("Transform pass duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	statePassDuration, err := m.Float64Histogram("pitchkit.state.duration",
		metric.WithDescription("State pass duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		recordsParsed:      recordsParsed,
		recordsTransformed: recordsTransformed,
		transformDuration:  transformDuration,
		statePassDuration:  statePassDuration,
	}, nil
}

// RecordParsed counts records loaded for a provider.
func (r *Recorder) RecordParsed(ctx context.Context, provider string, count int) {
	r.recordsParsed.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("provider", provider)))
}

// RecordTransformed counts records remapped and the pass duration.
func (r *Recorder) RecordTransformed(ctx context.Context, provider string, count int, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("provider", provider))
	r.recordsTransformed.Add(ctx, int64(count), attrs)
	r.transformDuration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}

// RecordStatePass records a state pass duration.
func (r *Recorder) RecordStatePass(ctx context.Context, elapsed time.Duration) {
	r.statePassDuration.Record(ctx, float64(elapsed.Milliseconds()))
}
