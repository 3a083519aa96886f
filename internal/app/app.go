// Package app wires every ss9k subsystem into a running application.
//
// App owns the full lifecycle: New creates and connects all subsystems
// (C1-C10 plus config/diag), Run drives the transcription worker and (in
// VAD mode) the VAD thread until its context is cancelled, and Shutdown
// tears everything down in order.
//
// For testing, inject the external-collaborator implementations via
// [Providers] and override construction details via functional [Option]s.
// Grounded on the teacher's internal/app.App: functional options, an
// ordered closers slice, and a stopOnce-guarded Shutdown.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/sqrew/ss9k/internal/action"
	"github.com/sqrew/ss9k/internal/activation"
	"github.com/sqrew/ss9k/internal/command"
	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/diag"
	"github.com/sqrew/ss9k/internal/router"
	"github.com/sqrew/ss9k/internal/state"
	"github.com/sqrew/ss9k/internal/vad"
	"github.com/sqrew/ss9k/internal/whisper"
	"github.com/sqrew/ss9k/internal/worker"
	"github.com/sqrew/ss9k/pkg/pcm"
	"github.com/sqrew/ss9k/pkg/sinc"
)

// Providers holds the external-collaborator implementations spec.md §1
// places out of scope: platform keystroke injection, the Whisper decode
// backend, and — only when ActivationMode is "vad" — the acoustic speech
// detector. App never constructs any of these itself.
type Providers struct {
	Injector    action.Injector
	Transcriber whisper.Transcriber
	Detector    vad.Detector

	// NativeSampleRate is the microphone's native capture rate in Hz, as
	// reported by the (out-of-scope) audio device enumeration layer.
	NativeSampleRate int

	// Channels is the channel count FeedAudio's frames arrive in.
	Channels int

	// Format is the sample encoding FeedAudio's frames arrive in.
	Format pcm.SampleFormat
}

// App owns one wired ss9k pipeline.
type App struct {
	cfgStore *config.Store
	state    *state.Store
	logs     *diag.Logs

	converter *pcm.Converter

	router *router.Router
	worker *worker.Worker

	hotkey *activation.HotkeyFrontEnd

	vadFront    *activation.VADFrontEnd
	vadEngine   *vad.VAD
	vadResample *sinc.Resampler
	vadAudioCh  chan []float32

	meterShutdown func(context.Context) error

	closers  []func() error
	stopOnce sync.Once
}

// Option customizes New before it wires subsystems.
type Option func(*options)

type options struct {
	meterProvider metric.MeterProvider
	routerBuffer  int
	vadAudioDepth int
}

// WithMeterProvider injects a metric.MeterProvider (e.g. a ManualReader in
// tests) instead of letting New call diag.InitProvider itself.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WithRouterBuffer overrides the audio router's channel buffer depth
// (default 4).
func WithRouterBuffer(n int) Option {
	return func(o *options) { o.routerBuffer = n }
}

// WithVADAudioDepth overrides the VAD thread's raw-audio handoff channel
// depth (default 32). A full channel means FeedAudio drops the chunk with
// a warning rather than blocking the real-time mic callback.
func WithVADAudioDepth(n int) Option {
	return func(o *options) { o.vadAudioDepth = n }
}

// New wires every ss9k component against cfg and the supplied external
// collaborators. cfg is copied into a hot-swappable [config.Store]; reload
// it later via Config().Reload or Config().Swap.
func New(ctx context.Context, cfg *config.Config, providers Providers, opts ...Option) (*App, error) {
	if providers.Injector == nil {
		return nil, fmt.Errorf("app: Providers.Injector is required")
	}
	if providers.Transcriber == nil {
		return nil, fmt.Errorf("app: Providers.Transcriber is required")
	}
	if cfg.ActivationMode == config.ActivationModeVAD && providers.Detector == nil {
		return nil, fmt.Errorf("app: activation_mode is %q but Providers.Detector is nil", cfg.ActivationMode)
	}
	if providers.NativeSampleRate <= 0 {
		return nil, fmt.Errorf("app: Providers.NativeSampleRate must be positive")
	}

	o := &options{routerBuffer: 4, vadAudioDepth: 32}
	for _, opt := range opts {
		opt(o)
	}

	a := &App{}

	mp := o.meterProvider
	if mp == nil {
		shutdown, err := diag.InitProvider(ctx, diag.ProviderConfig{ServiceName: "ss9k"})
		if err != nil {
			return nil, fmt.Errorf("app: init metrics provider: %w", err)
		}
		a.meterShutdown = shutdown
		mp = otel.GetMeterProvider()
	}

	logs, err := diag.New(cfg, mp)
	if err != nil {
		return nil, fmt.Errorf("app: init diag: %w", err)
	}
	a.logs = logs
	a.closers = append(a.closers, a.logs.Close)
	if a.meterShutdown != nil {
		a.closers = append(a.closers, func() error { return a.meterShutdown(context.Background()) })
	}

	a.cfgStore = config.NewStore(cfg)
	a.state = state.NewStore(uint64(cfg.KeyRepeatMs))

	conv, err := pcm.NewConverter(providers.Channels)
	if err != nil {
		return nil, fmt.Errorf("app: init sample converter: %w", err)
	}
	a.converter = conv

	executor := action.New(providers.Injector, a.state)
	interp := command.New(a.cfgStore, a.state, executor)

	a.router = router.New(o.routerBuffer)

	dispatcher := &metricsDispatcher{inner: interp, metrics: a.logs.Metrics}
	transcriber := &metricsTranscriber{inner: providers.Transcriber, metrics: a.logs.Metrics}
	a.worker = worker.New(a.cfgStore, a.router, transcriber, dispatcher, a.logs)

	switch cfg.ActivationMode {
	case config.ActivationModeVAD:
		a.vadEngine = vad.New(providers.Detector, vad.Config{
			Sensitivity: cfg.VADSensitivity,
			SilenceMs:   uint64(cfg.VADSilenceMs),
			MinSpeechMs: uint64(cfg.VADMinSpeechMs),
			SpeechPadMs: uint64(cfg.VADSpeechPadMs),
		})
		a.vadEngine.SetWakeWordEnabled(cfg.WakeWord != "")
		a.vadFront = activation.NewVADFrontEnd(a.vadEngine, a.router)
		a.vadAudioCh = make(chan []float32, o.vadAudioDepth)
		if providers.NativeSampleRate != vad.SampleRate {
			r, err := sinc.New(providers.NativeSampleRate, vad.SampleRate)
			if err != nil {
				return nil, fmt.Errorf("app: init vad resampler: %w", err)
			}
			a.vadResample = r
		}

	default:
		behavior := activation.Hold
		if cfg.HotkeyMode == config.HotkeyModeToggle {
			behavior = activation.Toggle
		}
		toggleTimeout := time.Duration(cfg.ToggleTimeoutSecs) * time.Second
		a.hotkey = activation.NewHotkeyFrontEnd(a.state, a.router, behavior, providers.NativeSampleRate, toggleTimeout)
	}

	return a, nil
}

// Config returns the hot-swappable configuration store.
func (a *App) Config() *config.Store { return a.cfgStore }

// State returns the process-wide C10 state cell bundle.
func (a *App) State() *state.Store { return a.state }

// OnHotkeyPress relays a global-hotkey press to the hotkey front-end
// (spec.md §5 execution context 2). No-op in VAD mode.
func (a *App) OnHotkeyPress(which activation.Which) {
	if a.hotkey != nil {
		a.hotkey.OnPress(which)
	}
}

// OnHotkeyRelease relays a global-hotkey release to the hotkey front-end.
// No-op in VAD mode.
func (a *App) OnHotkeyRelease(which activation.Which) {
	if a.hotkey != nil {
		a.hotkey.OnRelease(which)
	}
}

// OnVADToggleKey relays a hotkey press that starts/stops VAD listening. No-
// op outside VAD mode.
func (a *App) OnVADToggleKey() {
	if a.vadFront != nil {
		a.vadFront.OnPress()
	}
}

// FeedAudio is the real-time microphone callback entry point (spec.md §5
// execution context 1): it converts raw PCM to mono f32 via C1 and routes
// the samples to whichever activation front-end is active. It must not
// block: hotkey mode takes only CaptureBuffer's short lock; VAD mode hands
// the chunk off via a non-blocking channel send, dropping it with a
// warning if the VAD thread is behind.
func (a *App) FeedAudio(frame []byte, format pcm.SampleFormat) {
	samples, err := a.converter.Convert(frame, format)
	if err != nil {
		a.logs.Errorf("sample conversion: %v", err)
		return
	}

	if a.hotkey != nil {
		if a.hotkey.IsRecording() {
			a.hotkey.Buffer.Append(samples)
		}
		return
	}

	if a.vadFront != nil && a.vadFront.Listening() {
		select {
		case a.vadAudioCh <- append([]float32(nil), samples...):
		default:
			slog.Warn("vad audio channel full, dropping chunk")
		}
	}
}

// Run starts the transcription worker (and, in VAD mode, the VAD thread) and
// blocks until ctx is cancelled. Grounded on the teacher's hotctx.Assembler
// use of errgroup.WithContext for a small fixed set of goroutines that all
// share one cancellation.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.worker.Run(gctx)
		return nil
	})

	if a.vadFront != nil {
		g.Go(func() error {
			a.runVADThread(gctx)
			return nil
		})
	}

	slog.Info("app running", "activation_mode", a.cfgStore.Load().ActivationMode)
	<-gctx.Done()
	a.router.Close()
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// runVADThread is the dedicated VAD-thread goroutine (spec.md §5 execution
// context 3): it consumes raw native-rate audio chunks, runs C2-for-VAD and
// C4, forwards finalized utterances to the router, and owns a non-blocking
// receiver for the wake-word verdict so a pending check never stalls the
// next audio chunk's processing.
func (a *App) runVADThread(ctx context.Context) {
	var pending chan bool
	for {
		select {
		case <-ctx.Done():
			return
		case samples, ok := <-a.vadAudioCh:
			if !ok {
				return
			}
			if a.vadResample != nil {
				samples = a.vadResample.Resample(samples)
			}
			for _, e := range a.vadEngine.Feed(samples) {
				switch e.Kind {
				case vad.ReadyToProcess:
					a.router.Send(router.Message{Kind: router.AlreadyResampled, Samples: e.Samples})
				case vad.WakeWordCheckReady:
					resp := make(chan bool, 1)
					a.router.Send(router.Message{Kind: router.WakeWordCheck, Samples: e.Samples, Response: resp})
					pending = resp
				}
			}
		}

		if pending != nil {
			select {
			case verdict := <-pending:
				if !verdict {
					a.vadEngine.AbortUtterance()
				}
				pending = nil
			default:
			}
		}
	}
}

// Shutdown tears down all subsystems in reverse-init order. Safe to call
// more than once; only the first call runs the closers.
func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error
	a.stopOnce.Do(func() {
		slog.Info("shutting down", "closers", len(a.closers))
		for i, closer := range a.closers {
			select {
			case <-ctx.Done():
				slog.Warn("shutdown deadline exceeded", "remaining", len(a.closers)-i)
				shutdownErr = ctx.Err()
				return
			default:
			}
			if err := closer(); err != nil {
				slog.Warn("closer error", "index", i, "err", err)
			}
		}
		slog.Info("shutdown complete")
	})
	return shutdownErr
}
