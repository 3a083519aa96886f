// Package config provides the configuration schema, loader, and hot-swappable
// store for ss9k.
package config

// Config is the root configuration snapshot, decoded once from the TOML file
// found via [Load] and then held immutably: every component that reads it
// takes a reference to one snapshot and uses it to completion, never mutating
// it in place (see [Store] for the atomic swap that makes reloads visible).
type Config struct {
	// Model is the whisper.cpp model name, e.g. "small"; the model blob
	// itself (download, on-disk search) is out of scope — see spec.md §1.
	Model string `toml:"model"`

	// Language is the ISO 639-1 language tag passed to the transcriber.
	Language string `toml:"language"`

	// Threads is the decoder thread count passed to the transcriber.
	Threads int `toml:"threads"`

	// Device is a case-insensitive substring filter for audio device name
	// selection; empty means auto-select. Device enumeration itself is an
	// external collaborator (spec.md §1).
	Device string `toml:"device"`

	// Hotkey is the primary hotkey identifier, e.g. "F12".
	Hotkey string `toml:"hotkey"`

	// CommandHotkey is an optional second hotkey that forces command-mode
	// (leader word auto-prepended) on its press. Empty disables it.
	CommandHotkey string `toml:"command_hotkey"`

	// HotkeyMode is either "hold" or "toggle".
	HotkeyMode string `toml:"hotkey_mode"`

	// ToggleTimeoutSecs auto-closes a toggled-open capture gate after this
	// many seconds; 0 disables the timeout.
	ToggleTimeoutSecs int `toml:"toggle_timeout_secs"`

	// Leader is the command-grammar leader word, default "command".
	Leader string `toml:"leader"`

	// KeyRepeatMs is the held-key repeat-thread click interval.
	KeyRepeatMs int `toml:"key_repeat_ms"`

	// ProcessingTimeoutSecs bounds a single C3 transcription call; 0 disables
	// the timeout (the call runs inline with no supervisor).
	ProcessingTimeoutSecs int `toml:"processing_timeout_secs"`

	// AudioFeedback enables an (out-of-scope) audible capture-start chime;
	// carried as a flag for the action executor's boundary contract only.
	AudioFeedback bool `toml:"audio_feedback"`

	// ActivationMode is either "hotkey" or "vad".
	ActivationMode string `toml:"activation_mode"`

	// VADSensitivity in [0,1]; mapped to a detector threshold by internal/vad.
	VADSensitivity float64 `toml:"vad_sensitivity"`

	// VADSilenceMs is the silence duration (plus VADSpeechPadMs) required
	// before an utterance is finalized.
	VADSilenceMs int `toml:"vad_silence_ms"`

	// VADMinSpeechMs is the minimum speech duration for a valid utterance.
	VADMinSpeechMs int `toml:"vad_min_speech_ms"`

	// VADSpeechPadMs sizes the pre-roll buffer and the trailing silence pad.
	VADSpeechPadMs int `toml:"vad_speech_pad_ms"`

	// WakeWord, when non-empty, gates VAD-mode utterances: once an utterance
	// reaches ~1.2s its prefix is transcribed, and the utterance is discarded
	// unless that prefix contains the wake word (case-insensitive). Shorter
	// utterances are not checked. A leading wake word is stripped from the
	// final transcript before dispatch.
	WakeWord string `toml:"wake_word"`

	// DictationLog and ErrorLog are optional append-only log file paths.
	DictationLog string `toml:"dictation_log"`
	ErrorLog     string `toml:"error_log"`

	// Commands maps a spoken phrase to a shell command line.
	Commands map[string]string `toml:"commands"`

	// Aliases maps a spoken phrase to a literal substitution applied before
	// the command grammar runs.
	Aliases map[string]string `toml:"aliases"`

	// Inserts maps a spoken name to a template (placeholders in §4.8).
	Inserts map[string]string `toml:"inserts"`

	// Wrappers maps a spoken name to a "left|right" template pair.
	Wrappers map[string]string `toml:"wrappers"`

	// Verbose enables debug-level slog output.
	Verbose bool `toml:"verbose"`
}

// HotkeyMode values.
const (
	HotkeyModeHold   = "hold"
	HotkeyModeToggle = "toggle"
)

// ActivationMode values.
const (
	ActivationModeHotkey = "hotkey"
	ActivationModeVAD    = "vad"
)

// Default returns the documented default configuration (spec.md §6).
func Default() *Config {
	return &Config{
		Model:                 "small",
		Language:              "en",
		Threads:               4,
		Hotkey:                "F12",
		HotkeyMode:            HotkeyModeHold,
		Leader:                "command",
		KeyRepeatMs:           50,
		ProcessingTimeoutSecs: 30,
		ActivationMode:        ActivationModeHotkey,
		VADSensitivity:        0.9,
		VADSilenceMs:          1000,
		VADMinSpeechMs:        200,
		VADSpeechPadMs:        300,
		Verbose:               true,
		Commands:              map[string]string{},
		Aliases:               map[string]string{},
		Inserts:               map[string]string{},
		Wrappers:              map[string]string{},
	}
}
