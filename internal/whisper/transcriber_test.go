package whisper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sqrew/ss9k/internal/whisper"
	"github.com/sqrew/ss9k/internal/whisper/mock"
)

func TestRunWithTimeoutReturnsResult(t *testing.T) {
	t.Parallel()
	m := &mock.Transcriber{Results: []mock.Result{{Text: "hello world"}}}
	text, err := whisper.RunWithTimeout(context.Background(), m, []float32{0, 0}, whisper.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if text != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", text)
	}
}

func TestRunWithTimeoutPropagatesError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("boom")
	m := &mock.Transcriber{Results: []mock.Result{{Err: wantErr}}}
	_, err := whisper.RunWithTimeout(context.Background(), m, nil, whisper.Config{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped %v, got %v", wantErr, err)
	}
}

func TestRunWithTimeoutDropsLateResult(t *testing.T) {
	t.Parallel()
	delay := make(chan struct{})
	m := &mock.Transcriber{Delay: delay}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := whisper.RunWithTimeout(ctx, m, nil, whisper.Config{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	close(delay)
}
