// Package mock provides a test double for whisper.Transcriber, matching the
// mock-subpackage convention used throughout the teacher's provider packages
// (pkg/provider/stt/mock, pkg/provider/vad/mock).
package mock

import (
	"context"
	"sync"

	"github.com/sqrew/ss9k/internal/whisper"
)

// Transcriber is a scriptable whisper.Transcriber for tests. Each call to
// Transcribe pops the next (text, err) pair from Results, or returns the
// zero value if Results is exhausted.
type Transcriber struct {
	mu      sync.Mutex
	Results []Result
	Calls   []Call

	// Delay, if set, makes Transcribe block until Delay is closed or ctx is
	// done (returning ctx.Err()), useful for exercising
	// whisper.RunWithTimeout.
	Delay <-chan struct{}
}

type Result struct {
	Text string
	Err  error
}

type Call struct {
	Audio []float32
	Cfg   whisper.Config
}

func (m *Transcriber) Transcribe(ctx context.Context, audio []float32, cfg whisper.Config) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, Call{Audio: audio, Cfg: cfg})
	var r Result
	if len(m.Results) > 0 {
		r = m.Results[0]
		m.Results = m.Results[1:]
	}
	m.mu.Unlock()

	if m.Delay != nil {
		select {
		case <-m.Delay:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return r.Text, r.Err
}
