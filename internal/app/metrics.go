package app

import (
	"context"
	"strings"
	"time"

	"github.com/sqrew/ss9k/internal/diag"
	"github.com/sqrew/ss9k/internal/whisper"
	"github.com/sqrew/ss9k/internal/worker"
)

// metricsTranscriber wraps a [whisper.Transcriber] to record C3 latency,
// without requiring internal/whisper itself to depend on internal/diag.
// Grounded on internal/resilience's fallback wrappers, which wrap a
// provider interface the same way for a different cross-cutting concern.
type metricsTranscriber struct {
	inner   whisper.Transcriber
	metrics *diag.Metrics
}

var _ whisper.Transcriber = (*metricsTranscriber)(nil)

func (m *metricsTranscriber) Transcribe(ctx context.Context, audio16kMono []float32, cfg whisper.Config) (string, error) {
	start := time.Now()
	text, err := m.inner.Transcribe(ctx, audio16kMono, cfg)
	m.metrics.RecordTranscription(ctx, time.Since(start).Seconds())
	return text, err
}

// metricsDispatcher wraps the command interpreter (C8) to record one
// commands-dispatched count per Dispatch call, keeping internal/command free
// of an internal/diag dependency. Unknown-token warnings are not recorded
// here.
type metricsDispatcher struct {
	inner   worker.Dispatcher
	metrics *diag.Metrics
}

var _ worker.Dispatcher = (*metricsDispatcher)(nil)

func (m *metricsDispatcher) Dispatch(text string, commandMode bool) error {
	err := m.inner.Dispatch(text, commandMode)
	m.metrics.RecordCommand(context.Background(), dispatchMetricName(text, commandMode))
	return err
}

// dispatchMetricName extracts the base command name of a command-mode
// dispatch (the word after the leader word the worker prepends) for the
// metric's "command" attribute; plain dictation is reported as "dictation"
// since it never resolves to a base command name.
func dispatchMetricName(text string, commandMode bool) string {
	if !commandMode {
		return "dictation"
	}
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "unknown"
	}
	return fields[1]
}
