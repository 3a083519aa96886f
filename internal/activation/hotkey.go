// Package activation implements the Activation Front-End (spec.md C5): it
// maps hotkey press/release/toggle or VAD events to begin/end-utterance
// transitions and enforces recording-session identity so a stale timeout
// task can never close a newer session's capture gate.
//
// Grounded on original_source/src/main.rs's hold/toggle hotkey handling
// (RECORDING atomic bool + RECORDING_SESSION atomic counter + a spawned
// timeout thread gated on session equality) and on glyphoxa's
// sync.Once/WaitGroup goroutine-lifetime idioms.
package activation

import (
	"sync"
	"time"

	"github.com/sqrew/ss9k/internal/router"
	"github.com/sqrew/ss9k/internal/state"
)

// Behavior is the configured hotkey press/release semantics.
type Behavior uint8

const (
	Hold Behavior = iota
	Toggle
)

// Which distinguishes the primary hotkey from the optional command hotkey.
type Which uint8

const (
	Primary Which = iota
	CommandKey
)

// CaptureBuffer owns the in-flight utterance's samples. It is exclusively
// owned by the active capture path until the utterance is handed to the
// router, matching spec.md §3's ownership rule; the short lock exists only
// so the real-time audio callback (running on another goroutine) can append
// without racing a concurrent hotkey-triggered flush.
type CaptureBuffer struct {
	mu      sync.Mutex
	samples []float32
}

func (c *CaptureBuffer) Append(samples []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, samples...)
}

func (c *CaptureBuffer) TakeAndReset() []float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.samples
	c.samples = nil
	return out
}

func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = c.samples[:0]
}

// HotkeyFrontEnd drives the hotkey sub-mode of C5.
type HotkeyFrontEnd struct {
	Behavior          Behavior
	NativeRate        int
	ToggleTimeout     time.Duration
	Store             *state.Store
	Router            *router.Router
	Buffer            *CaptureBuffer

	recording     bool
	commandMode   bool
	mu            sync.Mutex

	// AfterFunc is overridable for tests; defaults to time.AfterFunc.
	AfterFunc func(time.Duration, func()) *time.Timer
}

func NewHotkeyFrontEnd(store *state.Store, rt *router.Router, behavior Behavior, nativeRate int, toggleTimeout time.Duration) *HotkeyFrontEnd {
	return &HotkeyFrontEnd{
		Behavior:      behavior,
		NativeRate:    nativeRate,
		ToggleTimeout: toggleTimeout,
		Store:         store,
		Router:        rt,
		Buffer:        &CaptureBuffer{},
		AfterFunc:     time.AfterFunc,
	}
}

// IsRecording reports whether the capture gate is currently open; the audio
// callback (C1) consults this before appending converted samples.
func (h *HotkeyFrontEnd) IsRecording() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.recording
}

// CommandMode reports whether the in-progress (or just-ended) capture was
// started by the command hotkey.
func (h *HotkeyFrontEnd) CommandMode() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.commandMode
}

// OnPress handles a press of which (Primary or CommandKey), per spec.md §4.5.
func (h *HotkeyFrontEnd) OnPress(which Which) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.Behavior {
	case Hold:
		if h.recording {
			return
		}
		h.Buffer.Reset()
		h.recording = true
		h.commandMode = which == CommandKey

	case Toggle:
		h.recording = !h.recording
		if h.recording {
			h.Buffer.Reset()
			h.commandMode = which == CommandKey
			session := h.Store.NextSession()
			if h.ToggleTimeout > 0 {
				h.scheduleTimeout(session)
			}
		} else {
			h.Store.NextSession()
			h.flushLocked()
		}
	}
}

// OnRelease handles a release of which. In Toggle behavior, release is
// ignored (spec.md §4.5).
func (h *HotkeyFrontEnd) OnRelease(which Which) {
	if h.Behavior != Hold {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.recording {
		return
	}
	h.recording = false
	h.flushLocked()
}

// scheduleTimeout spawns a one-shot task that closes the gate after
// ToggleTimeout only if session is still the current one and the gate is
// still open — the session-id guard that makes stale timeouts a no-op
// (spec.md §3 Recording Session invariant, scenario #6).
func (h *HotkeyFrontEnd) scheduleTimeout(session uint64) {
	h.AfterFunc(h.ToggleTimeout, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.Store.CurrentSession() != session || !h.recording {
			return
		}
		h.recording = false
		h.flushLocked()
	})
}

// flushLocked enqueues the captured buffer and resets it. Caller must hold h.mu.
func (h *HotkeyFrontEnd) flushLocked() {
	samples := h.Buffer.TakeAndReset()
	if len(samples) == 0 {
		return
	}
	h.Router.Send(router.Message{
		Kind:        router.NeedsResampling,
		Samples:     samples,
		NativeRate:  h.NativeRate,
		CommandMode: h.commandMode,
	})
}
