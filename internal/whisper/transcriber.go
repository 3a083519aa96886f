// Package whisper implements the Transcriber (spec.md C3): a thin wrapper
// around the whisper.cpp black box with timeout supervision. The model
// itself — weight loading, decode internals — is an external collaborator
// per spec.md §1; only the transcribe(audio, cfg) -> text contract and its
// failure/timeout handling are in scope here.
//
// Grounded on glyphoxa's pkg/provider/stt/whisper.Provider, which talks to a
// whisper.cpp HTTP server the same way.
package whisper

import (
	"context"
	"errors"
	"fmt"
)

// Failure kinds named by spec.md §4.3.
var (
	ErrModelStateCreationFailed = errors.New("whisper: model state creation failed")
	ErrDecodeFailed             = errors.New("whisper: decode failed")
	ErrLanguageUnknown          = errors.New("whisper: unknown language")
)

// Config carries the decode parameters spec.md §4.3 requires be passed
// through unchanged: greedy/best-of-1 decoding is implicit (the Transcriber
// never exposes a beam-search mode), thread count and language are explicit.
type Config struct {
	Threads  int
	Language string
}

// Transcriber runs greedy (best-of-1) decoding over 16kHz mono float32
// audio, with all progress/realtime/timestamp side channels suppressed, and
// returns the concatenation of segment texts with outer whitespace trimmed.
type Transcriber interface {
	Transcribe(ctx context.Context, audio16kMono []float32, cfg Config) (string, error)
}

// result is the one-shot payload used by RunWithTimeout's helper goroutine.
type result struct {
	text string
	err  error
}

// RunWithTimeout drives t.Transcribe on a helper goroutine and awaits it
// through a one-shot channel, for use by the transcription worker (C7) when
// processing_timeout_secs > 0 (spec.md §4.7 step 4). If ctx is cancelled or
// its deadline passes first, RunWithTimeout returns an error wrapping
// ctx.Err() and the helper
// goroutine's eventual result (success or failure) is discarded — the
// recording-session counter is untouched by this path since the utterance
// has already left C5's responsibility (spec.md §5 "Cancellation").
func RunWithTimeout(ctx context.Context, t Transcriber, audio []float32, cfg Config) (string, error) {
	ch := make(chan result, 1)
	go func() {
		text, err := t.Transcribe(ctx, audio, cfg)
		ch <- result{text: text, err: err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("whisper: transcription timed out: %w", ctx.Err())
	}
}
