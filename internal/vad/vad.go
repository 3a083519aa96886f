// Package vad implements the VAD Segmenter (spec.md C4): a stateful voice
// activity detector with rolling pre-roll, silence-timeout finalization, and
// optional wake-word gating. This is the most intricate single component in
// the specification; it is ported directly from
// original_source/src/vad.rs's Vad struct and state machine, generalized
// from a fixed Silero detector to an injected Detector interface so the
// neural model itself (a black-box acoustic detector, analogous to the
// out-of-scope Whisper model) stays outside this package's concerns.
package vad

import (
	"time"
)

// SampleRate is the fixed VAD operating rate (spec.md §4.4).
const SampleRate = 16000

// ChunkSize is the fixed frame size in samples (~32ms at 16kHz).
const ChunkSize = 512

// maxUtteranceSamples is the hard 30-second cap spec.md §9 requires be
// enforced explicitly (the original only capacity-hints a Vec, it never
// truncates).
const maxUtteranceSamples = 30 * SampleRate

// Detector produces a per-frame speech probability in [0,1] for exactly
// ChunkSize samples. The concrete acoustic model (Silero or otherwise) is an
// external collaborator; only this narrow contract is in scope.
type Detector interface {
	Predict(chunk []float32) float32
}

// State is one of the four VAD states (spec.md §4.4).
type State uint8

const (
	Idle State = iota
	Listening
	Speaking
	SilenceDetected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Speaking:
		return "speaking"
	case SilenceDetected:
		return "silence_detected"
	default:
		return "unknown"
	}
}

// EventKind discriminates the Event union (spec.md §4.4).
type EventKind uint8

const (
	StateChanged EventKind = iota
	WakeWordCheckReady
	ReadyToProcess
)

// Event is emitted by Feed, StartListening, StopListening, and
// AbortUtterance.
type Event struct {
	Kind    EventKind
	State   State     // valid when Kind == StateChanged
	Samples []float32 // valid when Kind == WakeWordCheckReady or ReadyToProcess
}

// Config carries the tunable VAD parameters (spec.md §3 Configuration).
type Config struct {
	// Sensitivity in [0,1]; mapped to threshold via τ = 1 - 0.8*sensitivity.
	Sensitivity  float64
	SilenceMs    uint64
	MinSpeechMs  uint64
	SpeechPadMs  uint64
}

// VAD is the segmenter state machine. Not safe for concurrent use; it is
// owned exclusively by the VAD thread (spec.md §5 execution context 3).
type VAD struct {
	detector Detector
	cfg      Config
	state    State

	audioBuffer []float32
	preBuffer   []float32
	preBufferMax int

	chunkBuffer []float32

	silenceStart time.Time
	speechStart  time.Time
	hasSilence   bool
	hasSpeech    bool

	wakeWordEnabled      bool
	wakeWordCheckSamples int
	wakeWordCheckEmitted bool

	now func() time.Time
}

// New builds a VAD with the given detector and configuration.
func New(detector Detector, cfg Config) *VAD {
	preBufferMax := int(SampleRate * cfg.SpeechPadMs / 1000)
	return &VAD{
		detector:             detector,
		cfg:                  cfg,
		state:                Idle,
		audioBuffer:          make([]float32, 0, maxUtteranceSamples),
		preBuffer:            make([]float32, 0, preBufferMax),
		preBufferMax:         preBufferMax,
		chunkBuffer:          make([]float32, 0, ChunkSize),
		wakeWordCheckSamples: int(float64(SampleRate) * 1.2),
		now:                  time.Now,
	}
}

func (v *VAD) State() State { return v.state }

func (v *VAD) SetWakeWordEnabled(enabled bool) { v.wakeWordEnabled = enabled }

// threshold returns τ = 1 - 0.8*sensitivity (spec.md §4.4 "Threshold mapping").
func (v *VAD) threshold() float64 {
	return 1.0 - v.cfg.Sensitivity*0.8
}

// StartListening transitions Idle -> Listening, clearing all buffers. It is
// a no-op (returns ok=false) if the VAD is already non-Idle.
func (v *VAD) StartListening() (Event, bool) {
	if v.state != Idle {
		return Event{}, false
	}
	v.clearAll()
	v.state = Listening
	return Event{Kind: StateChanged, State: Listening}, true
}

// StopListening transitions any non-Idle state to Idle, clearing all buffers.
func (v *VAD) StopListening() (Event, bool) {
	if v.state == Idle {
		return Event{}, false
	}
	v.clearAll()
	v.state = Idle
	return Event{Kind: StateChanged, State: Idle}, true
}

// AbortUtterance discards the in-progress buffer and returns to Listening
// without emitting ReadyToProcess, e.g. when a wake-word check comes back
// negative.
func (v *VAD) AbortUtterance() (Event, bool) {
	if v.state != Speaking && v.state != SilenceDetected {
		return Event{}, false
	}
	v.audioBuffer = v.audioBuffer[:0]
	v.chunkBuffer = v.chunkBuffer[:0]
	v.hasSilence = false
	v.hasSpeech = false
	v.wakeWordCheckEmitted = false
	v.state = Listening
	return Event{Kind: StateChanged, State: Listening}, true
}

// Reset clears all buffers; if not Idle, forces the state back to Listening.
func (v *VAD) Reset() {
	v.clearAll()
	if v.state != Idle {
		v.state = Listening
	}
}

func (v *VAD) clearAll() {
	v.audioBuffer = v.audioBuffer[:0]
	v.chunkBuffer = v.chunkBuffer[:0]
	v.preBuffer = v.preBuffer[:0]
	v.hasSilence = false
	v.hasSpeech = false
	v.wakeWordCheckEmitted = false
}

// Feed appends samples (16kHz mono float32) and processes every complete
// ChunkSize frame accumulated so far; any remainder ≤ ChunkSize-1 samples is
// held for the next call. Returns the events produced, in order.
func (v *VAD) Feed(samples []float32) []Event {
	var events []Event
	if v.state == Idle {
		return events
	}

	v.chunkBuffer = append(v.chunkBuffer, samples...)

	for len(v.chunkBuffer) >= ChunkSize {
		chunk := append([]float32(nil), v.chunkBuffer[:ChunkSize]...)
		v.chunkBuffer = v.chunkBuffer[ChunkSize:]

		probability := v.detector.Predict(chunk)
		isSpeech := float64(probability) >= v.threshold()

		switch v.state {
		case Listening:
			if isSpeech {
				v.state = Speaking
				v.speechStart = v.now()
				v.hasSpeech = true
				v.audioBuffer = v.audioBuffer[:0]
				v.appendAudio(v.preBuffer)
				v.appendAudio(chunk)
				v.preBuffer = v.preBuffer[:0]
				events = append(events, Event{Kind: StateChanged, State: Speaking})
			} else {
				v.preBuffer = append(v.preBuffer, chunk...)
				if excess := len(v.preBuffer) - v.preBufferMax; excess > 0 {
					v.preBuffer = append(v.preBuffer[:0], v.preBuffer[excess:]...)
				}
			}

		case Speaking:
			v.appendAudio(chunk)
			if v.wakeWordEnabled && !v.wakeWordCheckEmitted && len(v.audioBuffer) >= v.wakeWordCheckSamples {
				prefix := append([]float32(nil), v.audioBuffer[:v.wakeWordCheckSamples]...)
				events = append(events, Event{Kind: WakeWordCheckReady, Samples: prefix})
				v.wakeWordCheckEmitted = true
			}
			if !isSpeech {
				v.state = SilenceDetected
				v.silenceStart = v.now()
				v.hasSilence = true
				events = append(events, Event{Kind: StateChanged, State: SilenceDetected})
			}

		case SilenceDetected:
			v.appendAudio(chunk)
			if isSpeech {
				v.state = Speaking
				v.hasSilence = false
				events = append(events, Event{Kind: StateChanged, State: Speaking})
			} else if v.hasSilence {
				totalWait := time.Duration(v.cfg.SilenceMs+v.cfg.SpeechPadMs) * time.Millisecond
				if v.now().Sub(v.silenceStart) >= totalWait {
					var speechDuration time.Duration
					if v.hasSpeech {
						speechDuration = v.now().Sub(v.speechStart)
					}
					if speechDuration >= time.Duration(v.cfg.MinSpeechMs)*time.Millisecond {
						audio := v.audioBuffer
						v.audioBuffer = make([]float32, 0, maxUtteranceSamples)
						events = append(events, Event{Kind: ReadyToProcess, Samples: audio})
					}
					v.state = Listening
					v.hasSilence = false
					v.hasSpeech = false
					v.chunkBuffer = v.chunkBuffer[:0]
					v.wakeWordCheckEmitted = false
					events = append(events, Event{Kind: StateChanged, State: Listening})
				}
			}
		}
	}

	return events
}

// appendAudio appends to the utterance buffer, dropping overflow past the
// 30-second hard cap rather than growing unboundedly (spec.md §9).
func (v *VAD) appendAudio(chunk []float32) {
	room := maxUtteranceSamples - len(v.audioBuffer)
	if room <= 0 {
		return
	}
	if room < len(chunk) {
		chunk = chunk[:room]
	}
	v.audioBuffer = append(v.audioBuffer, chunk...)
}
