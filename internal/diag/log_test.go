package diag

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/sqrew/ss9k/internal/config"
)

func newTestLogs(t *testing.T, cfg *config.Config) *Logs {
	t.Helper()
	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	l, err := New(cfg, mp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestDictationAppendsStampedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictation.log")
	cfg := &config.Config{DictationLog: path}
	l := newTestLogs(t, cfg)

	l.Dictation("hello world")
	l.Dictation("second line")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if !strings.HasSuffix(lines[0], "hello world") || !strings.HasPrefix(lines[0], "[") {
		t.Errorf("unexpected line format: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "second line") {
		t.Errorf("unexpected line format: %q", lines[1])
	}
}

func TestErrorfAppendsFormattedMessage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "error.log")
	cfg := &config.Config{ErrorLog: path}
	l := newTestLogs(t, cfg)

	l.Errorf("transcription: %v", "decoder timed out")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(got), "transcription: decoder timed out") {
		t.Errorf("expected formatted message in line, got %q", got)
	}
}

func TestEmptyLogPathsAreNoOps(t *testing.T) {
	cfg := &config.Config{}
	l := newTestLogs(t, cfg)

	// Must not panic with no file backing either log.
	l.Dictation("ignored")
	l.Errorf("ignored: %v", "whatever")
}

func TestUnopenableLogPathDisablesThatLogOnly(t *testing.T) {
	cfg := &config.Config{
		DictationLog: filepath.Join(t.TempDir(), "missing-dir", "dictation.log"),
	}
	l := newTestLogs(t, cfg)

	// Should not panic even though the directory doesn't exist; the log is
	// simply disabled.
	l.Dictation("still safe")
}
