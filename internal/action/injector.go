// Package action implements the Action Executor (spec.md C9): the single
// component that emits keystrokes, typed text, and shell invocations, and
// that owns every write to the process-wide state cells (Mode, Last-
// Command, Last-Typed-Length, Held-Keys — spec.md §3's ownership rule).
// Grounded on original_source/src/commands.rs's direct enigo.Enigo calls,
// generalized from a hardwired Enigo handle to an injected Injector
// interface: the platform keystroke-injection library is an external
// collaborator out of scope per spec.md §1, the same boundary-contract
// pattern internal/whisper and internal/vad use for their own external
// models.
package action

import "github.com/sqrew/ss9k/pkg/keys"

// Injector is the minimal platform text-injection surface this package
// needs: type a string, and press/release/click a synthetic key. A real
// implementation wraps an OS automation library (e.g. a keybd_event/
// uinput/CGEventPost-backed package); none of the pack's example repos
// carries one; see DESIGN.md for why this stays an interface rather than
// a concrete dependency.
type Injector interface {
	Type(text string) error
	Key(k keys.Key, action keys.Action) error
}
