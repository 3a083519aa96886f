package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ValidHotkeyNames lists the recognized hotkey identifiers (spec.md §6). A
// config referencing a name outside this list is rejected by [Validate] and
// falls back to "F12" with a warning.
var ValidHotkeyNames = func() []string {
	names := []string{
		"ScrollLock", "Pause", "PrintScreen", "Insert",
		"Home", "End", "PageUp", "PageDown",
	}
	for i := 1; i <= 12; i++ {
		names = append(names, fmt.Sprintf("F%d", i))
	}
	for i := 0; i <= 9; i++ {
		names = append(names, fmt.Sprintf("Num%d", i))
	}
	return names
}()

// SearchPaths returns the ordered list of candidate config paths (spec.md §6):
// $XDG_CONFIG_HOME/ss9k/config.toml, ~/.ss9k/config.toml, ./config.toml.
// File discovery itself is out of spec.md's scope; this is retained as the
// documented boundary contract for cmd/ss9k's caller.
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ss9k", "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ss9k", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".ss9k", "config.toml"))
	}
	paths = append(paths, "config.toml")
	return paths
}

// Load reads the TOML configuration file at path, applies [Default] for any
// zero-valued field TOML left untouched, and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a TOML config from r over top of [Default] and
// validates the result. Useful in tests where configs are built from string
// literals, matching the teacher's LoadFromReader(strings.NewReader(...))
// test convention.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values. Hard
// violations are returned as a joined error; soft inconsistencies are logged
// via slog and the field is corrected in place (matching spec.md §7's policy
// that configuration errors keep the previous snapshot or fall back rather
// than aborting startup).
func Validate(cfg *Config) error {
	var errs []error

	if cfg.HotkeyMode == "" {
		cfg.HotkeyMode = HotkeyModeHold
	}
	if cfg.HotkeyMode != HotkeyModeHold && cfg.HotkeyMode != HotkeyModeToggle {
		errs = append(errs, fmt.Errorf("hotkey_mode %q is invalid; valid values: hold, toggle", cfg.HotkeyMode))
	}

	if cfg.ActivationMode == "" {
		cfg.ActivationMode = ActivationModeHotkey
	}
	if cfg.ActivationMode != ActivationModeHotkey && cfg.ActivationMode != ActivationModeVAD {
		errs = append(errs, fmt.Errorf("activation_mode %q is invalid; valid values: hotkey, vad", cfg.ActivationMode))
	}

	if cfg.Hotkey != "" && !slices.Contains(ValidHotkeyNames, cfg.Hotkey) {
		slog.Warn("unknown hotkey name, falling back to F12", "hotkey", cfg.Hotkey)
		cfg.Hotkey = "F12"
	}
	if cfg.Hotkey == "" {
		cfg.Hotkey = "F12"
	}
	if cfg.CommandHotkey != "" && !slices.Contains(ValidHotkeyNames, cfg.CommandHotkey) {
		slog.Warn("unknown command_hotkey name, disabling command hotkey", "hotkey", cfg.CommandHotkey)
		cfg.CommandHotkey = ""
	}

	if cfg.VADSensitivity < 0 || cfg.VADSensitivity > 1 {
		errs = append(errs, fmt.Errorf("vad_sensitivity %.2f is out of range [0, 1]", cfg.VADSensitivity))
	}
	if cfg.Threads <= 0 {
		errs = append(errs, fmt.Errorf("threads %d must be positive", cfg.Threads))
	}
	if cfg.ToggleTimeoutSecs < 0 {
		errs = append(errs, fmt.Errorf("toggle_timeout_secs %d must be >= 0", cfg.ToggleTimeoutSecs))
	}
	if cfg.ProcessingTimeoutSecs < 0 {
		errs = append(errs, fmt.Errorf("processing_timeout_secs %d must be >= 0", cfg.ProcessingTimeoutSecs))
	}
	if cfg.KeyRepeatMs <= 0 {
		errs = append(errs, fmt.Errorf("key_repeat_ms %d must be positive", cfg.KeyRepeatMs))
	}
	if cfg.Leader == "" {
		slog.Warn("leader word is empty; defaulting to \"command\"")
		cfg.Leader = "command"
	}

	if cfg.ActivationMode == ActivationModeVAD && cfg.WakeWord == "" {
		slog.Warn("activation_mode is vad with no wake_word configured; every utterance passing VAD will be dispatched")
	}
	if cfg.CommandHotkey == "" && cfg.ActivationMode == ActivationModeHotkey {
		slog.Warn("no command_hotkey configured; leader-word commands still work via the primary hotkey's transcript")
	}

	for _, m := range []map[string]string{cfg.Commands, cfg.Aliases, cfg.Inserts, cfg.Wrappers} {
		for k := range m {
			if k == "" {
				errs = append(errs, errors.New("empty key not allowed in commands/aliases/inserts/wrappers"))
			}
		}
	}

	return errors.Join(errs...)
}
