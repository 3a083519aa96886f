// Package router implements the Audio Router (spec.md C6): a single
// producer, single consumer FIFO of utterance messages flowing from the
// activation front-end (C5) and the VAD thread to the transcription worker
// (C7). Grounded on glyphoxa's pkg/provider/stt channel-based session
// pattern (buffered channel handoff between a capture goroutine and a
// consumer goroutine).
package router

import (
	"log/slog"
	"sync"
)

// MessageKind discriminates the Message union (spec.md §4.6).
type MessageKind uint8

const (
	// NeedsResampling carries samples at the native capture rate; C7 must
	// resample to 16kHz via C2 before transcribing.
	NeedsResampling MessageKind = iota

	// AlreadyResampled carries samples already at 16kHz (VAD mode output).
	AlreadyResampled

	// WakeWordCheck is a quick-check request paired with a response channel
	// carrying the boolean verdict back to the VAD thread.
	WakeWordCheck
)

// Message is one entry in the router queue.
type Message struct {
	Kind MessageKind

	Samples []float32

	// NativeRate is the sample rate of Samples when Kind == NeedsResampling.
	NativeRate int

	// CommandMode is true when the leader word must be prepended to the
	// final transcript (set by the command hotkey).
	CommandMode bool

	// Response receives the wake-word verdict for Kind == WakeWordCheck
	// messages; nil for all other kinds.
	Response chan<- bool
}

// Router is a bounded, in-order FIFO. The sender never blocks beyond the
// channel's buffer; if the receiver side is gone the send is logged once as
// fatal (spec.md §4.6) rather than panicking, since a router disconnection
// should degrade the process, not crash a real-time audio callback.
type Router struct {
	ch     chan Message
	closed chan struct{}

	warnOnce sync.Once
}

// New builds a Router with the given channel buffer depth.
func New(bufferSize int) *Router {
	return &Router{
		ch:     make(chan Message, bufferSize),
		closed: make(chan struct{}),
	}
}

// Send enqueues msg without blocking beyond the channel buffer. If the
// router has been closed, the message is dropped and logged once.
func (r *Router) Send(msg Message) {
	select {
	case <-r.closed:
		r.warnOnce.Do(func() {
			slog.Error("audio router: receiver disconnected, dropping utterances")
		})
		return
	default:
	}
	select {
	case r.ch <- msg:
	case <-r.closed:
		r.warnOnce.Do(func() {
			slog.Error("audio router: receiver disconnected, dropping utterances")
		})
	}
}

// Recv is consumed by C7's single long-lived worker goroutine. ok is false
// once the router has been closed and its buffer drained — the worker
// should exit in that case (spec.md §4.7 "Worker channel disconnected").
func (r *Router) Recv() (Message, bool) {
	select {
	case msg, ok := <-r.ch:
		return msg, ok
	case <-r.closed:
		select {
		case msg, ok := <-r.ch:
			return msg, ok
		default:
			return Message{}, false
		}
	}
}

// Close signals that no further Sends should be accepted and that the
// consumer should stop after draining what remains. Safe to call once; it
// never closes the underlying channel, avoiding a send-after-close panic
// race against a concurrent Send.
func (r *Router) Close() {
	select {
	case <-r.closed:
	default:
		close(r.closed)
	}
}
