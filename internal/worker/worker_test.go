package worker_test

import (
	"context"
	"sync"
	"testing"

	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/router"
	whispermock "github.com/sqrew/ss9k/internal/whisper/mock"
	"github.com/sqrew/ss9k/internal/worker"
)

type recordingDispatcher struct {
	mu    sync.Mutex
	calls []call
}

type call struct {
	text        string
	commandMode bool
}

func (d *recordingDispatcher) Dispatch(text string, commandMode bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, call{text, commandMode})
	return nil
}

func (d *recordingDispatcher) snapshot() []call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]call(nil), d.calls...)
}

type recordingLogger struct {
	mu         sync.Mutex
	dictations []string
	errors     []string
	utterances []string
}

func (l *recordingLogger) Dictation(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dictations = append(l.dictations, text)
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, format)
}

func (l *recordingLogger) Utterance(source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.utterances = append(l.utterances, source)
}

func (l *recordingLogger) snapshotUtterances() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.utterances...)
}

func newWorker(t *testing.T, cfg *config.Config, results ...whispermock.Result) (*worker.Worker, *router.Router, *recordingDispatcher, *recordingLogger) {
	t.Helper()
	cfgStore := config.NewStore(cfg)
	rt := router.New(4)
	mt := &whispermock.Transcriber{Results: results}
	d := &recordingDispatcher{}
	l := &recordingLogger{}
	w := worker.New(cfgStore, rt, mt, d, l)
	return w, rt, d, l
}

func TestWorkerDispatchesPlainDictation(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.ProcessingTimeoutSecs = 0
	w, rt, d, l := newWorker(t, cfg, whispermock.Result{Text: "hello world"})

	rt.Send(router.Message{Kind: router.AlreadyResampled, Samples: []float32{0.1, 0.2}})
	rt.Close()
	w.Run(context.Background())

	got := d.snapshot()
	if len(got) != 1 || got[0].text != "hello world" || got[0].commandMode {
		t.Fatalf("unexpected dispatch calls: %+v", got)
	}
	if u := l.snapshotUtterances(); len(u) != 1 || u[0] != "vad" {
		t.Fatalf("expected one vad utterance tick, got: %+v", u)
	}
}

func TestWorkerPrependsLeaderInCommandMode(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Leader = "command"
	cfg.ProcessingTimeoutSecs = 0
	w, rt, d, l := newWorker(t, cfg, whispermock.Result{Text: "open browser"})

	rt.Send(router.Message{Kind: router.NeedsResampling, NativeRate: 16000, Samples: []float32{0.1}, CommandMode: true})
	rt.Close()
	w.Run(context.Background())

	got := d.snapshot()
	if len(got) != 1 || got[0].text != "command open browser" || !got[0].commandMode {
		t.Fatalf("unexpected dispatch calls: %+v", got)
	}
	if u := l.snapshotUtterances(); len(u) != 1 || u[0] != "hotkey" {
		t.Fatalf("expected one hotkey utterance tick, got: %+v", u)
	}
}

func TestWorkerStripsLeadingWakeWord(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.WakeWord = "computer"
	cfg.ProcessingTimeoutSecs = 0
	w, rt, d, _ := newWorker(t, cfg, whispermock.Result{Text: "Computer open the pod bay doors"})

	rt.Send(router.Message{Kind: router.AlreadyResampled, Samples: []float32{0.1}})
	rt.Close()
	w.Run(context.Background())

	got := d.snapshot()
	if len(got) != 1 || got[0].text != "open the pod bay doors" {
		t.Fatalf("expected wake word stripped, got: %+v", got)
	}
}

func TestWorkerWakeWordCheckRespondsWithoutDispatch(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.WakeWord = "computer"
	cfg.ProcessingTimeoutSecs = 0
	w, rt, d, l := newWorker(t, cfg, whispermock.Result{Text: "computer"})

	resp := make(chan bool, 1)
	rt.Send(router.Message{Kind: router.WakeWordCheck, Samples: []float32{0.1}, Response: resp})
	rt.Close()
	w.Run(context.Background())

	select {
	case v := <-resp:
		if !v {
			t.Fatal("expected positive wake word verdict")
		}
	default:
		t.Fatal("expected a verdict on the response channel")
	}
	if len(d.snapshot()) != 0 {
		t.Fatal("wake word check must never reach the dispatcher")
	}
	if u := l.snapshotUtterances(); len(u) != 0 {
		t.Fatalf("wake word check must not be counted as an utterance, got: %+v", u)
	}
}

func TestWorkerResamplesNeedsResamplingMessages(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.ProcessingTimeoutSecs = 0
	mt := &whispermock.Transcriber{Results: []whispermock.Result{{Text: "hi"}}}
	cfgStore := config.NewStore(cfg)
	rt := router.New(4)
	d := &recordingDispatcher{}
	w := worker.New(cfgStore, rt, mt, d, &recordingLogger{})

	samples := make([]float32, 320) // 40ms @ 8kHz native rate input
	rt.Send(router.Message{Kind: router.NeedsResampling, NativeRate: 8000, Samples: samples})
	rt.Close()
	w.Run(context.Background())

	calls := mt.Calls
	if len(calls) != 1 {
		t.Fatalf("expected exactly one transcribe call, got %d", len(calls))
	}
	if len(calls[0].Audio) == len(samples) {
		t.Fatal("expected resampled audio length to differ from the native-rate input")
	}
}
