package action

import (
	"log/slog"
	"time"

	"github.com/sqrew/ss9k/pkg/keys"
)

// Hold presses k and adds it to Held-Keys, starting the repeat thread if it
// is not already running. Grounded on original_source/src/commands.rs's
// execute_hold and the HELD_KEYS/repeat-thread contract in spec.md §4.9.
func (e *Executor) Hold(k keys.Key) error {
	if err := e.Injector.Key(k, keys.Press); err != nil {
		return err
	}
	e.Store.Held.Add(k)
	if e.Store.TryStartRepeat() {
		go e.runRepeatThread()
	}
	return nil
}

// Release removes k from Held-Keys and releases it.
func (e *Executor) Release(k keys.Key) error {
	e.Store.Held.Remove(k)
	return e.Injector.Key(k, keys.Release)
}

// ReleaseAll clears Held-Keys and releases every member, returning how many
// there were. The repeat thread discovers the empty set on its next cycle
// and exits on its own (spec.md §5 "cancellation").
func (e *Executor) ReleaseAll() (int, error) {
	members := e.Store.Held.Clear()
	var firstErr error
	for _, k := range members {
		if err := e.Injector.Key(k, keys.Release); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(members), firstErr
}

// runRepeatThread re-clicks every held key every Key-Repeat-Ms until the
// set empties, then clears the running flag and exits. The
// TryStartRepeat/StopRepeat compare-exchange pair guarantees only one
// instance of this loop runs at a time (spec.md §4.9).
func (e *Executor) runRepeatThread() {
	for {
		members := e.Store.Held.Snapshot()
		if len(members) == 0 {
			e.Store.StopRepeat()
			return
		}
		for _, k := range members {
			if err := e.Injector.Key(k, keys.Click); err != nil {
				slog.Error("held-key repeat click failed", "key", k.String(), "err", err)
			}
		}
		time.Sleep(time.Duration(e.Store.KeyRepeatMs()) * time.Millisecond)
	}
}
