package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
	"go.opentelemetry.io/otel/metric"

	"github.com/sqrew/ss9k/internal/config"
)

// timestampPattern is the strftime layout used to prefix every dictation
// and error log line.
const timestampPattern = "[%Y-%m-%d %H:%M:%S]"

// Logs bundles the metrics instruments with the two append-only log files
// named by spec.md §6 (dictation_log, error_log). Either path may be empty,
// in which case the corresponding log method is a no-op. Satisfies
// internal/worker.Logger.
type Logs struct {
	Metrics *Metrics

	dictationMu sync.Mutex
	dictation   io.WriteCloser

	errorMu  sync.Mutex
	errorLog io.WriteCloser
}

// New opens the configured log files (creating a missing parent directory
// is out of scope; an open failure is logged and treated as "no log file")
// and wraps mp in a [Metrics] instance.
func New(cfg *config.Config, mp metric.MeterProvider) (*Logs, error) {
	l := &Logs{}

	if cfg.DictationLog != "" {
		f, err := os.OpenFile(cfg.DictationLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Warn("could not open dictation log, dictation logging disabled", "path", cfg.DictationLog, "err", err)
		} else {
			l.dictation = f
		}
	}
	if cfg.ErrorLog != "" {
		f, err := os.OpenFile(cfg.ErrorLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Warn("could not open error log, error logging disabled", "path", cfg.ErrorLog, "err", err)
		} else {
			l.errorLog = f
		}
	}

	metrics, err := NewMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	l.Metrics = metrics

	return l, nil
}

// Dictation appends one finalized transcript line to the dictation log.
// Any I/O error is swallowed after a warning: logs must never break the
// main flow (spec.md §9).
func (l *Logs) Dictation(text string) {
	if l.dictation == nil {
		return
	}
	l.dictationMu.Lock()
	defer l.dictationMu.Unlock()
	line := stamp() + " " + text + "\n"
	if _, err := l.dictation.Write([]byte(line)); err != nil {
		slog.Warn("dictation log write failed", "err", err)
	}
}

// Errorf formats a message in the manner of fmt.Sprintf, emits it as a
// structured slog warning, and appends a stamped line to the error log.
func (l *Logs) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Warn(msg)
	if l.errorLog == nil {
		return
	}
	l.errorMu.Lock()
	defer l.errorMu.Unlock()
	line := stamp() + " " + msg + "\n"
	if _, err := l.errorLog.Write([]byte(line)); err != nil {
		slog.Warn("error log write failed", "err", err)
	}
}

// Utterance records one utterance reaching the transcription worker, tagged
// by its activation source ("hotkey" or "vad").
func (l *Logs) Utterance(source string) {
	l.Metrics.RecordUtterance(context.Background(), source)
}

// Close closes whichever log files were opened. Safe to call even if both
// paths were empty.
func (l *Logs) Close() error {
	var errs []error
	if l.dictation != nil {
		if err := l.dictation.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if l.errorLog != nil {
		if err := l.errorLog.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return fmt.Errorf("closing diag logs: %v", errs)
	}
}

func stamp() string {
	out, err := strftime.Format(timestampPattern, time.Now())
	if err != nil {
		return time.Now().Format("[2006-01-02 15:04:05]")
	}
	return out
}
