package activation_test

import (
	"testing"
	"time"

	"github.com/sqrew/ss9k/internal/activation"
	"github.com/sqrew/ss9k/internal/router"
	"github.com/sqrew/ss9k/internal/state"
)

func TestHoldPressReleaseEnqueues(t *testing.T) {
	t.Parallel()
	st := state.NewStore(50)
	rt := router.New(4)
	h := activation.NewHotkeyFrontEnd(st, rt, activation.Hold, 44100, 0)

	h.OnPress(activation.Primary)
	if !h.IsRecording() {
		t.Fatal("expected recording after press")
	}
	h.Buffer.Append([]float32{1, 2, 3})
	h.OnRelease(activation.Primary)
	if h.IsRecording() {
		t.Fatal("expected recording to stop after release")
	}

	msg, ok := rt.Recv()
	if !ok {
		t.Fatal("expected an enqueued message")
	}
	if msg.Kind != router.NeedsResampling || len(msg.Samples) != 3 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestToggleSessionGuardIgnoresStaleTimeout(t *testing.T) {
	t.Parallel()
	st := state.NewStore(50)
	rt := router.New(4)
	h := activation.NewHotkeyFrontEnd(st, rt, activation.Toggle, 44100, 5*time.Second)

	var scheduled []func()
	h.AfterFunc = func(d time.Duration, f func()) *time.Timer {
		scheduled = append(scheduled, f)
		return time.NewTimer(time.Hour) // never actually fires in the test
	}

	h.OnPress(activation.Primary) // session=1, recording=true
	h.OnPress(activation.Primary) // recording=false (toggle off), flush
	h.OnPress(activation.Primary) // session=3 (NextSession called again), recording=true

	if st.CurrentSession() != 3 {
		t.Fatalf("expected session 3, got %d", st.CurrentSession())
	}

	// Simulate session-1's timeout firing late.
	scheduled[0]()

	if !h.IsRecording() {
		t.Fatal("a stale session-1 timeout must not close the session-3 gate")
	}
}

func TestCommandHotkeySetsCommandMode(t *testing.T) {
	t.Parallel()
	st := state.NewStore(50)
	rt := router.New(4)
	h := activation.NewHotkeyFrontEnd(st, rt, activation.Hold, 44100, 0)

	h.OnPress(activation.CommandKey)
	if !h.CommandMode() {
		t.Fatal("expected command mode true after command-hotkey press")
	}
	h.Buffer.Append([]float32{1})
	h.OnRelease(activation.CommandKey)

	msg, _ := rt.Recv()
	if !msg.CommandMode {
		t.Fatal("expected enqueued message to carry command mode")
	}
}
