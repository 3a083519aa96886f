package config_test

import (
	"strings"
	"testing"

	"github.com/sqrew/ss9k/internal/config"
)

func TestLoadFromReaderDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader(empty): %v", err)
	}
	if cfg.Model != "small" || cfg.Hotkey != "F12" || cfg.HotkeyMode != config.HotkeyModeHold {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFromReaderOverrides(t *testing.T) {
	t.Parallel()
	toml := `
model = "medium"
hotkey = "F9"
hotkey_mode = "toggle"
leader = "computer"
vad_sensitivity = 0.5

[aliases]
"e max" = "emacs"
`
	cfg, err := config.LoadFromReader(strings.NewReader(toml))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Model != "medium" || cfg.Hotkey != "F9" || cfg.HotkeyMode != config.HotkeyModeToggle {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Aliases["e max"] != "emacs" {
		t.Fatalf("alias table not decoded: %+v", cfg.Aliases)
	}
}

func TestValidateRejectsBadHotkeyMode(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFromReader(strings.NewReader(`hotkey_mode = "bogus"`))
	if err == nil || !strings.Contains(err.Error(), "hotkey_mode") {
		t.Fatalf("expected hotkey_mode validation error, got %v", err)
	}
}

func TestValidateFallsBackOnUnknownHotkey(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader(`hotkey = "Z99"`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Hotkey != "F12" {
		t.Fatalf("expected fallback to F12, got %q", cfg.Hotkey)
	}
}

func TestValidateRejectsNonPositiveThreads(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFromReader(strings.NewReader(`threads = 0`))
	if err == nil || !strings.Contains(err.Error(), "threads") {
		t.Fatalf("expected threads validation error, got %v", err)
	}
}
