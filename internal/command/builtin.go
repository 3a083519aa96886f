package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sqrew/ss9k/internal/state"
	"github.com/sqrew/ss9k/pkg/keys"
)

// singleBuiltin issues one action for a recognized single built-in command
// name (spec.md §4.8.1's navigation/editing/media/meta table). Grounded on
// original_source/src/commands.rs's execute_single_builtin_command match
// arms, generalized to the injected Executor.
type singleBuiltin func(ex Executor) error

func click(k keys.Key) singleBuiltin {
	return func(ex Executor) error { return ex.Key(k, keys.Click) }
}

func chord(mod keys.Key, k keys.Key) singleBuiltin {
	return func(ex Executor) error {
		if err := ex.Key(mod, keys.Press); err != nil {
			return err
		}
		err := ex.Key(k, keys.Click)
		if relErr := ex.Key(mod, keys.Release); relErr != nil && err == nil {
			err = relErr
		}
		return err
	}
}

func chord2(mod1, mod2 keys.Key, k keys.Key) singleBuiltin {
	return func(ex Executor) error {
		if err := ex.Key(mod1, keys.Press); err != nil {
			return err
		}
		if err := ex.Key(mod2, keys.Press); err != nil {
			ex.Key(mod1, keys.Release)
			return err
		}
		err := ex.Key(k, keys.Click)
		if relErr := ex.Key(mod2, keys.Release); relErr != nil && err == nil {
			err = relErr
		}
		if relErr := ex.Key(mod1, keys.Release); relErr != nil && err == nil {
			err = relErr
		}
		return err
	}
}

var ctrl = keys.Key{Kind: keys.KindControl}
var shift = keys.Key{Kind: keys.KindShift}

var singleBuiltins = map[string]singleBuiltin{
	// Navigation
	"enter": click(keys.Key{Kind: keys.KindEnter}), "new line": click(keys.Key{Kind: keys.KindEnter}),
	"newline": click(keys.Key{Kind: keys.KindEnter}), "return": click(keys.Key{Kind: keys.KindEnter}),
	"tab":       click(keys.Key{Kind: keys.KindTab}),
	"escape":    click(keys.Key{Kind: keys.KindEscape}),
	"cancel":    click(keys.Key{Kind: keys.KindEscape}),
	"backspace": click(keys.Key{Kind: keys.KindBackspace}), "delete": click(keys.Key{Kind: keys.KindBackspace}),
	"delete that": click(keys.Key{Kind: keys.KindBackspace}), "oops": click(keys.Key{Kind: keys.KindBackspace}),
	"space":       click(keys.Key{Kind: keys.KindSpace}),
	"up":          click(keys.Key{Kind: keys.KindArrowUp}), "arrow up": click(keys.Key{Kind: keys.KindArrowUp}),
	"down":        click(keys.Key{Kind: keys.KindArrowDown}), "arrow down": click(keys.Key{Kind: keys.KindArrowDown}),
	"left":        click(keys.Key{Kind: keys.KindArrowLeft}), "arrow left": click(keys.Key{Kind: keys.KindArrowLeft}),
	"right":       click(keys.Key{Kind: keys.KindArrowRight}), "arrow right": click(keys.Key{Kind: keys.KindArrowRight}),
	"home":        click(keys.Key{Kind: keys.KindHome}),
	"end":         click(keys.Key{Kind: keys.KindEnd}),
	"page up":     click(keys.Key{Kind: keys.KindPageUp}),
	"page down":   click(keys.Key{Kind: keys.KindPageDown}),

	// Editing
	"select all": chord(ctrl, keys.Unicode('a')),
	"copy":       chord(ctrl, keys.Unicode('c')), "copy that": chord(ctrl, keys.Unicode('c')),
	"paste": chord(ctrl, keys.Unicode('v')),
	"cut":   chord(ctrl, keys.Unicode('x')),
	"undo":  chord(ctrl, keys.Unicode('z')),
	"redo":  chord2(ctrl, shift, keys.Unicode('z')),
	"save":  chord(ctrl, keys.Unicode('s')),
	"find":  chord(ctrl, keys.Unicode('f')),
	"close": chord(ctrl, keys.Unicode('w')), "close tab": chord(ctrl, keys.Unicode('w')),
	"new tab": chord(ctrl, keys.Unicode('t')),

	// Media
	"play": click(keys.Media("play_pause")), "pause": click(keys.Media("play_pause")),
	"play pause": click(keys.Media("play_pause")), "playpause": click(keys.Media("play_pause")),
	"next": click(keys.Media("next_track")), "next track": click(keys.Media("next_track")), "skip": click(keys.Media("next_track")),
	"previous": click(keys.Media("prev_track")), "previous track": click(keys.Media("prev_track")),
	"prev": click(keys.Media("prev_track")), "back": click(keys.Media("prev_track")),
	"volume up": click(keys.Media("volume_up")), "louder": click(keys.Media("volume_up")),
	"volume down": click(keys.Media("volume_down")), "quieter": click(keys.Media("volume_down")), "softer": click(keys.Media("volume_down")),
	"mute": click(keys.Media("volume_mute")), "unmute": click(keys.Media("volume_mute")), "mute toggle": click(keys.Media("volume_mute")),
}

// runMeta returns true if name is one of the meta built-ins (help,
// languages, config) and handles it; "config" opens $EDITOR (or xdg-open)
// through the executor's SpawnShell.
func runMeta(ex Executor, name string) (bool, error) {
	switch name {
	case "help":
		slog.Info("voice command reference",
			"navigation", "enter, tab, escape, backspace, space, up, down, left, right, home, end, page up, page down",
			"editing", "select all, copy, paste, cut, undo, redo, save, find, close tab, new tab",
			"media", "play, next, previous, volume up, volume down, mute",
			"subcommands", "shift, spell, hold, release, emoji, punctuation, insert, wrap, mode")
		return true, nil
	case "languages":
		slog.Info("supported languages follow the whisper.cpp ISO 639-1 tag set (language config key)")
		return true, nil
	case "config", "settings", "edit config":
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "xdg-open"
		}
		path := configPathHint()
		return true, ex.SpawnShell(fmt.Sprintf("%s %s", editor, path))
	}
	return false, nil
}

func configPathHint() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg + "/ss9k/config.toml"
	}
	home, _ := os.UserHomeDir()
	return home + "/.config/ss9k/config.toml"
}

// executeSingleBuiltin runs one iteration of a single built-in by name,
// trying the click/chord table first and falling back to the meta
// commands. Returns ok=false for an unrecognized name (spec.md §4.8.1
// "unknown -> warn, return false").
func executeSingleBuiltin(ex Executor, name string) (bool, error) {
	if fn, ok := singleBuiltins[name]; ok {
		return true, fn(ex)
	}
	if ok, err := runMeta(ex, name); ok {
		return true, err
	}
	slog.Warn("unknown command", "command", name)
	return false, nil
}

// executeBuiltin is the full built-in dispatcher: times-suffix stripping,
// repeat, sub-prefixes (shift/spell/hold/release), release-all, and the
// single-builtin loop with Last-Command tracking. Grounded on
// original_source/src/commands.rs's execute_builtin_command.
func (in *Interpreter) executeBuiltin(cmd string) bool {
	base, count := parseTimesSuffix(cmd)

	if base == "repeat" || strings.HasPrefix(base, "repeat ") {
		return in.executeRepeat(base, count)
	}
	if shiftCmd, ok := strings.CutPrefix(base, "shift "); ok {
		return in.executeShift(strings.TrimSpace(shiftCmd))
	}
	if spellInput, ok := strings.CutPrefix(base, "spell "); ok {
		return in.executeSpell(strings.TrimSpace(spellInput))
	}
	if holdKey, ok := strings.CutPrefix(base, "hold "); ok {
		return in.executeHold(strings.TrimSpace(holdKey))
	}
	if base == "release all" || base == "release" {
		return in.executeReleaseAll()
	}
	if releaseKey, ok := strings.CutPrefix(base, "release "); ok {
		return in.executeRelease(strings.TrimSpace(releaseKey))
	}
	if base == "scratch that" || base == "undo" || base == "scratch" {
		return in.executeScratch()
	}
	if modeName, ok := strings.CutPrefix(base, "mode "); ok {
		return in.executeSetMode(strings.TrimSpace(modeName))
	}

	times := count
	if times < 1 {
		times = 1
	}
	for i := 0; i < times; i++ {
		ok, err := executeSingleBuiltin(in.Executor, base)
		if err != nil {
			slog.Error("command execution failed", "command", base, "err", err)
		}
		if !ok {
			return false
		}
		if times > 1 && i < times-1 {
			time.Sleep(10 * time.Millisecond)
		}
	}
	in.Executor.NoteCommand(base)
	in.lastRepeatCount = times
	return true
}

func (in *Interpreter) executeRepeat(base string, suffixCount int) bool {
	repeatCount := suffixCount
	if repeatCount < 1 {
		if base == "repeat" {
			// Bare "repeat", no explicit count: replay Last-Command the
			// same number of times it ran last (spec.md §8 scenario 3).
			repeatCount = in.lastRepeatCount
		}
		if repeatCount < 1 {
			repeatCount = 1
		}
	}
	if base != "repeat" {
		if arg, ok := strings.CutPrefix(base, "repeat "); ok {
			fields := strings.Fields(arg)
			if len(fields) > 0 {
				if n, ok := parseNumberWord(fields[0]); ok && n > 0 {
					repeatCount = n * repeatCount
				}
			}
		}
	}
	last := in.Store.LastCommand()
	if last == "" {
		slog.Warn("nothing to repeat")
		return false
	}
	for i := 0; i < repeatCount; i++ {
		ok, err := executeSingleBuiltin(in.Executor, last)
		if err != nil {
			slog.Error("repeat execution failed", "command", last, "err", err)
		}
		if !ok {
			return false
		}
	}
	return true
}

func (in *Interpreter) executeScratch() bool {
	if err := in.Executor.Scratch(); err != nil {
		slog.Error("scratch failed", "err", err)
		return false
	}
	return true
}

func (in *Interpreter) executeSetMode(name string) bool {
	mode, ok := state.ParseMode(name)
	if !ok {
		slog.Warn("unknown mode", "mode", name)
		return false
	}
	in.Executor.SetMode(mode)
	return true
}
