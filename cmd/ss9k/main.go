// Command ss9k is the main entry point for the SS9K dictation engine: a
// single long-running process (spec.md §6) that wires the C1-C10 pipeline
// together and blocks until it receives an interrupt.
//
// Three external collaborators spec.md §1 places out of scope — platform
// keystroke injection, global hotkey capture, and the acoustic VAD model —
// have no concrete implementation anywhere in this repo. This command wires
// logging stand-ins for keystroke injection and the VAD model so the binary
// starts and runs the pipeline; global hotkey capture has no stand-in, so
// nothing calls FeedAudio/OnHotkeyPress/OnVADToggleKey until a platform
// integration layer does.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/sqrew/ss9k/internal/action"
	"github.com/sqrew/ss9k/internal/app"
	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/vad"
	"github.com/sqrew/ss9k/internal/whisper"
	"github.com/sqrew/ss9k/pkg/keys"
	"github.com/sqrew/ss9k/pkg/pcm"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.StringP("config", "c", firstSearchPath(), "path to the TOML configuration file")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug-level logging, overriding the config file")
	whisperServer := pflag.String("whisper-server", "http://127.0.0.1:8081", "whisper.cpp HTTP server /inference endpoint")
	nativeSampleRate := pflag.Int("native-sample-rate", 16000, "microphone capture rate in Hz, as reported by the audio device layer")
	channels := pflag.Int("channels", 1, "microphone capture channel count")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "ss9k: config file %q not found\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "ss9k: %v\n", err)
		}
		return 1
	}
	if *verbose {
		cfg.Verbose = true
	}

	slog.SetDefault(newLogger(cfg.Verbose))
	slog.Info("ss9k starting",
		"config", *configPath,
		"activation_mode", cfg.ActivationMode,
		"hotkey_mode", cfg.HotkeyMode,
	)

	transcriber, err := whisper.NewHTTP(*whisperServer)
	if err != nil {
		slog.Error("failed to build transcriber", "err", err)
		return 1
	}

	providers := app.Providers{
		Injector:         &loggingInjector{},
		Transcriber:      transcriber,
		NativeSampleRate: *nativeSampleRate,
		Channels:         *channels,
		Format:           pcm.FormatI16,
	}
	if cfg.ActivationMode == config.ActivationModeVAD {
		providers.Detector = &loggingDetector{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, providers)
	if err != nil {
		slog.Error("failed to initialize application", "err", err)
		return 1
	}

	slog.Info("ss9k ready — waiting for a platform integration layer to drive FeedAudio/OnHotkeyPress/OnVADToggleKey; press Ctrl+C to shut down")

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	slog.Info("shutdown signal received, stopping…")
	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

func firstSearchPath() string {
	paths := config.SearchPaths()
	if len(paths) == 0 {
		return "config.toml"
	}
	return paths[0]
}

func newLogger(verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// loggingInjector stands in for the platform-specific keystroke-injection
// backend (spec.md §1 places the real implementation out of scope). It
// satisfies action.Injector so the pipeline runs end to end in a terminal
// for development and testing, logging what it would have typed or pressed.
type loggingInjector struct{}

func (*loggingInjector) Type(text string) error {
	slog.Info("inject: type", "text", text)
	return nil
}

func (*loggingInjector) Key(k keys.Key, a keys.Action) error {
	slog.Info("inject: key", "kind", k.Kind, "action", a)
	return nil
}

var _ action.Injector = (*loggingInjector)(nil)

// loggingDetector stands in for the acoustic speech-detection model (spec.md
// §1, same boundary as the transcriber's model weights): it never reports
// speech, so VAD mode starts and runs but never transitions out of silence
// until a real model is wired in by a platform integration layer.
type loggingDetector struct{}

func (*loggingDetector) Predict(chunk []float32) float32 { return 0 }

var _ vad.Detector = (*loggingDetector)(nil)
