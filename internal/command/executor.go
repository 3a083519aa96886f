// Package command implements the Command Interpreter (spec.md C8): the
// leader-word grammar that parses transcribed text into subcommands,
// built-ins, custom shell invocations, or plain dictation. Grounded on
// original_source/src/commands.rs and lookups.rs, generalized from a single
// hardwired enigo.Enigo handle to an injected Executor interface so the
// platform keystroke-injection library (out of scope per spec.md §1) stays
// a boundary contract, matching how glyphoxa treats its STT/VAD providers.
package command

import (
	"github.com/sqrew/ss9k/internal/state"
	"github.com/sqrew/ss9k/pkg/keys"
)

// Executor is the Action Executor boundary (C9): the command interpreter
// never touches a text-injection handle directly, it only calls through
// this interface. It also owns every write to the process-wide state cells
// (Mode, Last-Command, Last-Typed-Length, Held-Keys) per spec.md §3's
// ownership rule — this package only ever reads those cells, never sets
// them directly.
type Executor interface {
	// Type injects text verbatim (no local echo) and updates
	// Last-Typed-Length to the rune count of text.
	Type(text string) error

	// Key issues a single keystroke/chord action.
	Key(k keys.Key, action keys.Action) error

	// Hold adds k to the held-keys set (starting the repeat thread if
	// needed) and presses it. Release removes k (if present) and releases
	// it. ReleaseAll clears the set and releases every member.
	Hold(k keys.Key) error
	Release(k keys.Key) error
	ReleaseAll() (int, error)

	// SpawnShell launches cmd as a detached background process.
	SpawnShell(cmd string) error

	// SetMode installs the process-wide dictation mode.
	SetMode(m state.Mode)

	// NoteCommand records name as Last-Command for a future "repeat".
	NoteCommand(name string)

	// Scratch issues Last-Typed-Length backspaces and zeroes the counter.
	Scratch() error
}
