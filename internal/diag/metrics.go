// Package diag provides ss9k's observability surface: the append-only
// dictation/error log files described in spec.md §6, and an OpenTelemetry
// metrics wrapper grounded on the teacher's internal/observe package. Only
// the metrics half of that package is carried forward — a single-process
// desktop tool has no cross-service trace to propagate, so the tracing
// provider is dropped (see DESIGN.md).
package diag

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name for every ss9k metric.
const meterName = "github.com/sqrew/ss9k"

// Metrics holds the OpenTelemetry instruments for the dictation pipeline.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronization.
type Metrics struct {
	// UtterancesCaptured counts finalized utterances reaching the worker,
	// tagged by activation source ("hotkey" or "vad").
	UtterancesCaptured metric.Int64Counter

	// TranscriptionDuration tracks C3 transcription latency in seconds.
	TranscriptionDuration metric.Float64Histogram

	// CommandsDispatched counts successful C8 dispatches, tagged by the
	// base command name (e.g. "backspace", "repeat").
	CommandsDispatched metric.Int64Counter

	// UnknownTokenWarnings counts command-grammar tokens that matched
	// nothing, tagged by mode.
	UnknownTokenWarnings metric.Int64Counter
}

// latencyBuckets are histogram bucket boundaries (seconds) sized for a
// single transcription call rather than a network round trip.
var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16,
}

// NewMetrics creates a fully initialized [Metrics] using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	met := &Metrics{}
	var err error

	if met.UtterancesCaptured, err = m.Int64Counter("ss9k.utterances.captured",
		metric.WithDescription("Total finalized utterances reaching the transcription worker."),
	); err != nil {
		return nil, err
	}
	if met.TranscriptionDuration, err = m.Float64Histogram("ss9k.transcription.duration",
		metric.WithDescription("Latency of a single whisper.cpp transcription call."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.CommandsDispatched, err = m.Int64Counter("ss9k.commands.dispatched",
		metric.WithDescription("Total command-grammar dispatches by base command name."),
	); err != nil {
		return nil, err
	}
	if met.UnknownTokenWarnings, err = m.Int64Counter("ss9k.unknown_token.warnings",
		metric.WithDescription("Total command tokens that matched nothing, by mode."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordUtterance records one finalized utterance from the given activation
// source ("hotkey" or "vad").
func (m *Metrics) RecordUtterance(ctx context.Context, source string) {
	m.UtterancesCaptured.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

// RecordTranscription records one C3 call's latency in seconds.
func (m *Metrics) RecordTranscription(ctx context.Context, seconds float64) {
	m.TranscriptionDuration.Record(ctx, seconds)
}

// RecordCommand records one successful dispatch of the named base command.
func (m *Metrics) RecordCommand(ctx context.Context, name string) {
	m.CommandsDispatched.Add(ctx, 1, metric.WithAttributes(attribute.String("command", name)))
}

// RecordUnknownToken records one unmatched command-grammar token in the
// given mode.
func (m *Metrics) RecordUnknownToken(ctx context.Context, mode string) {
	m.UnknownTokenWarnings.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
}
