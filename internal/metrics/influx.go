package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// ErrInfluxDisabled is returned by Connect when influx.enabled is false.
var ErrInfluxDisabled = errors.New("influx.enabled is false")

// InfluxSink ships run-level performance points to InfluxDB.
type InfluxSink struct {
	client influxdb2.Client
	writer influxdb2_api.WriteAPI
	logger zerolog.Logger
}

// NewInfluxSink creates an unconnected sink.
func NewInfluxSink(log zerolog.Logger) *InfluxSink {
	return &InfluxSink{logger: log}
}

// Connect establishes the InfluxDB connection and validates it with a ping.
func (s *InfluxSink) Connect(ctx context.Context) error {
	if !viper.GetBool("influx.enabled") {
		return ErrInfluxDisabled
	}

	s.client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(2500).
			SetFlushInterval(1000),
	)

	running, err := s.client.Ping(ctx)
	if err != nil || !running {
		return fmt.Errorf("failed to reach InfluxDB: %w", err)
	}

	s.writer = s.client.WriteAPI(
		viper.GetString("influx.org"),
		viper.GetString("influx.bucket"),
	)
	errorsCh := s.writer.Errors()
	go func() {
		for writeErr := range errorsCh {
			s.logger.Error().Err(writeErr).Msg("Error sending data to InfluxDB")
		}
	}()

	s.logger.Info().Msg("InfluxDB client initialized")
	return nil
}

// WritePipelineRun ships one performance point describing a pipeline run.
func (s *InfluxSink) WritePipelineRun(matchID, provider string, records int, parse, transform, statePass time.Duration) {
	if s.writer == nil {
		return
	}
	point := influxdb2.NewPoint(
		"pipeline_run",
		map[string]string{
			"match_id": matchID,
			"provider": provider,
		},
		map[string]interface{}{
			"records":      records,
			"parse_ms":     parse.Milliseconds(),
			"transform_ms": transform.Milliseconds(),
			"state_ms":     statePass.Milliseconds(),
		},
		time.Now(),
	)
	s.writer.WritePoint(point)
}

// Close flushes pending writes and closes the client.
func (s *InfluxSink) Close() {
	if s.writer != nil {
		s.writer.Flush()
	}
	if s.client != nil {
		s.client.Close()
	}
}
