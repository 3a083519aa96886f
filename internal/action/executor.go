package action

import (
	"log/slog"

	"github.com/sqrew/ss9k/internal/state"
	"github.com/sqrew/ss9k/pkg/keys"
)

// Executor satisfies internal/command.Executor. It is the sole writer of
// Mode, Last-Command, Last-Typed-Length, and Held-Keys (spec.md §3); every
// other component, including the command interpreter, only reads them.
type Executor struct {
	Injector Injector
	Store    *state.Store
}

// New builds an Executor over injector and store.
func New(injector Injector, store *state.Store) *Executor {
	return &Executor{Injector: injector, Store: store}
}

// Type injects text verbatim and records its rune count as
// Last-Typed-Length (spec.md §4.9 "scratch tracking").
func (e *Executor) Type(text string) error {
	if err := e.Injector.Type(text); err != nil {
		return err
	}
	e.Store.SetLastTypedLength(len([]rune(text)))
	return nil
}

// Key issues a single keystroke/chord action, unmodified.
func (e *Executor) Key(k keys.Key, act keys.Action) error {
	return e.Injector.Key(k, act)
}

// SetMode installs the process-wide dictation mode.
func (e *Executor) SetMode(m state.Mode) {
	e.Store.SetMode(m)
}

// NoteCommand records name as Last-Command for a future "repeat".
func (e *Executor) NoteCommand(name string) {
	e.Store.SetLastCommand(name)
}

// Scratch issues Last-Typed-Length backspaces and zeroes the counter
// (spec.md §4.8.1 "scratch that"/"undo"/"scratch").
func (e *Executor) Scratch() error {
	n := e.Store.LastTypedLength()
	for i := 0; i < n; i++ {
		if err := e.Injector.Key(keys.Key{Kind: keys.KindBackspace}, keys.Click); err != nil {
			slog.Error("scratch backspace failed", "err", err)
			e.Store.SetLastTypedLength(0)
			return err
		}
	}
	e.Store.SetLastTypedLength(0)
	return nil
}
