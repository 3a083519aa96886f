package activation

import (
	"sync/atomic"

	"github.com/sqrew/ss9k/internal/router"
	"github.com/sqrew/ss9k/internal/vad"
)

// VADFrontEnd is the VAD sub-mode of C5: the hotkey instead toggles a
// listening flag that gates the VAD segmenter's Idle<->Listening
// transition. Utterances emitted by C4 are enqueued tagged AlreadyResampled
// (spec.md §4.5).
type VADFrontEnd struct {
	VAD    *vad.VAD
	Router *router.Router

	listening atomic.Bool
}

func NewVADFrontEnd(v *vad.VAD, rt *router.Router) *VADFrontEnd {
	return &VADFrontEnd{VAD: v, Router: rt}
}

// OnPress flips the VAD-listening flag, starting or stopping the segmenter.
func (f *VADFrontEnd) OnPress() {
	if f.listening.CompareAndSwap(false, true) {
		f.VAD.StartListening()
		return
	}
	if f.listening.CompareAndSwap(true, false) {
		f.VAD.StopListening()
	}
}

// Listening reports the current VAD-listening flag.
func (f *VADFrontEnd) Listening() bool {
	return f.listening.Load()
}

// HandleEvents processes the events returned by vad.VAD.Feed, enqueueing
// ReadyToProcess utterances onto the router.
func (f *VADFrontEnd) HandleEvents(events []vad.Event) {
	for _, e := range events {
		switch e.Kind {
		case vad.ReadyToProcess:
			f.Router.Send(router.Message{
				Kind:        router.AlreadyResampled,
				Samples:     e.Samples,
				CommandMode: false,
			})
		case vad.WakeWordCheckReady:
			// The caller (internal/app wiring) is responsible for sending a
			// WakeWordCheck router message and, on a negative verdict,
			// calling f.VAD.AbortUtterance(); this method only forwards
			// ReadyToProcess/StateChanged bookkeeping so the VAD thread's
			// non-blocking receive idiom (spec.md §9) stays in the wiring
			// layer where the paired response channel is owned.
		}
	}
}
