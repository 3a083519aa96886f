// Package worker implements the Transcription Worker (spec.md C7): the
// single long-lived consumer of the audio router queue that drives the
// resampler (C2) and transcriber (C3) and routes the resulting text to the
// command interpreter (C8). Grounded on glyphoxa's pkg/provider/stt/whisper
// session processing loop (single consumer goroutine, timeout-guarded
// decode call).
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/router"
	"github.com/sqrew/ss9k/internal/whisper"
	"github.com/sqrew/ss9k/pkg/sinc"
)

// Dispatcher is the command interpreter boundary (C8); decoupled from
// internal/command so this package doesn't need to import the (much larger)
// grammar package directly.
type Dispatcher interface {
	Dispatch(text string, commandMode bool) error
}

// Logger receives dictation text, diagnostic errors, and a per-utterance
// metrics tick; satisfied by internal/diag.Logs. Logging is best-effort:
// any I/O error on a log write is swallowed (spec.md §7 "Logs").
type Logger interface {
	Dictation(text string)
	Errorf(format string, args ...any)

	// Utterance records one utterance reaching the worker from the given
	// activation source ("hotkey" or "vad"). Not called for a WakeWordCheck
	// message, which is a quick probe rather than a finalized utterance.
	Utterance(source string)
}

// Worker is C7. Not safe for concurrent Run calls; intended to be driven by
// exactly one goroutine (spec.md §5 execution context 4).
type Worker struct {
	Config      *config.Store
	Router      *router.Router
	Transcriber whisper.Transcriber
	Dispatcher  Dispatcher
	Logger      Logger

	resamplers map[int]*sinc.Resampler
}

func New(cfgStore *config.Store, rt *router.Router, t whisper.Transcriber, d Dispatcher, logger Logger) *Worker {
	return &Worker{
		Config:      cfgStore,
		Router:      rt,
		Transcriber: t,
		Dispatcher:  d,
		Logger:      logger,
		resamplers:  make(map[int]*sinc.Resampler),
	}
}

// Run consumes the router until it is closed and drained. Intended to be
// launched as the single long-lived transcription-worker goroutine.
func (w *Worker) Run(ctx context.Context) {
	for {
		msg, ok := w.Router.Recv()
		if !ok {
			slog.Info("transcription worker: router closed, exiting")
			return
		}
		w.handle(ctx, msg)
	}
}

func (w *Worker) handle(ctx context.Context, msg router.Message) {
	cfg := w.Config.Load()

	var audio []float32
	switch msg.Kind {
	case router.NeedsResampling:
		audio = w.resample(msg.NativeRate, 16000, msg.Samples)
		w.Logger.Utterance("hotkey")
	case router.AlreadyResampled:
		audio = msg.Samples
		w.Logger.Utterance("vad")
	case router.WakeWordCheck:
		audio = msg.Samples
	}

	text, err := w.transcribe(ctx, cfg, audio)
	if err != nil {
		w.Logger.Errorf("transcription: %v", err)
		if msg.Kind == router.WakeWordCheck && msg.Response != nil {
			msg.Response <- false
		}
		return
	}

	if msg.Kind == router.WakeWordCheck {
		verdict := cfg.WakeWord != "" && strings.Contains(strings.ToLower(text), strings.ToLower(cfg.WakeWord))
		if msg.Response != nil {
			msg.Response <- verdict
		}
		return
	}

	if msg.CommandMode {
		text = cfg.Leader + " " + text
	}

	// VAD-mode utterances (AlreadyResampled) strip a leading wake word.
	if msg.Kind == router.AlreadyResampled && cfg.WakeWord != "" {
		lower := strings.ToLower(text)
		if strings.HasPrefix(lower, strings.ToLower(cfg.WakeWord)) {
			text = strings.TrimLeft(text[len(cfg.WakeWord):], " \t")
		}
	}

	w.Logger.Dictation(text)
	if err := w.Dispatcher.Dispatch(text, msg.CommandMode); err != nil {
		w.Logger.Errorf("command dispatch: %v", err)
	}
}

func (w *Worker) resample(nativeRate, targetRate int, samples []float32) []float32 {
	if nativeRate == targetRate {
		return samples
	}
	r, ok := w.resamplers[nativeRate]
	if !ok {
		var err error
		r, err = sinc.New(nativeRate, targetRate)
		if err != nil {
			w.Logger.Errorf("resample: %v", err)
			return samples
		}
		w.resamplers[nativeRate] = r
	}
	return r.Resample(samples)
}

func (w *Worker) transcribe(ctx context.Context, cfg *config.Config, audio []float32) (string, error) {
	tcfg := whisper.Config{Threads: cfg.Threads, Language: cfg.Language}
	if cfg.ProcessingTimeoutSecs <= 0 {
		return w.Transcriber.Transcribe(ctx, audio, tcfg)
	}
	tctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ProcessingTimeoutSecs)*time.Second)
	defer cancel()
	text, err := whisper.RunWithTimeout(tctx, w.Transcriber, audio, tcfg)
	if err != nil {
		return "", fmt.Errorf("worker: %w", err)
	}
	return text, nil
}
