package command_test

import (
	"sync"
	"testing"

	"github.com/sqrew/ss9k/internal/command"
	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/state"
	"github.com/sqrew/ss9k/pkg/keys"
)

// fakeExecutor is a test double for command.Executor. Real ownership of
// Mode/Last-Command/Last-Typed-Length/Held-Keys belongs to the Action
// Executor (spec.md §3), so — like the real internal/action.Executor will
// — it mutates the shared state.Store itself rather than leaving that to
// the interpreter.
type fakeExecutor struct {
	mu     sync.Mutex
	store  *state.Store
	typed  []string
	keys   []keyEvent
	shells []string
	held   map[keys.Key]bool
}

type keyEvent struct {
	k      keys.Key
	action keys.Action
}

func newFakeExecutor(store *state.Store) *fakeExecutor {
	return &fakeExecutor{store: store, held: map[keys.Key]bool{}}
}

func (f *fakeExecutor) Type(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typed = append(f.typed, text)
	f.store.SetLastTypedLength(len([]rune(text)))
	return nil
}

func (f *fakeExecutor) SetMode(m state.Mode) {
	f.store.SetMode(m)
}

func (f *fakeExecutor) NoteCommand(name string) {
	f.store.SetLastCommand(name)
}

func (f *fakeExecutor) Scratch() error {
	n := f.store.LastTypedLength()
	f.mu.Lock()
	for i := 0; i < n; i++ {
		f.keys = append(f.keys, keyEvent{keys.Key{Kind: keys.KindBackspace}, keys.Click})
	}
	f.mu.Unlock()
	f.store.SetLastTypedLength(0)
	return nil
}

func (f *fakeExecutor) Key(k keys.Key, action keys.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, keyEvent{k, action})
	return nil
}

func (f *fakeExecutor) Hold(k keys.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.held[k] = true
	return nil
}

func (f *fakeExecutor) Release(k keys.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, k)
	return nil
}

func (f *fakeExecutor) ReleaseAll() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.held)
	f.held = map[keys.Key]bool{}
	return n, nil
}

func (f *fakeExecutor) SpawnShell(cmd string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shells = append(f.shells, cmd)
	return nil
}

func newInterpreter(cfg *config.Config) (*command.Interpreter, *fakeExecutor, *state.Store) {
	cfgStore := config.NewStore(cfg)
	st := state.NewStore(50)
	ex := newFakeExecutor(st)
	return command.New(cfgStore, st, ex), ex, st
}

func TestDictationPassthroughAppliesAliases(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Aliases = map[string]string{"e max": "emacs"}
	in, ex, _ := newInterpreter(cfg)

	if err := in.Dispatch("launch e max", false); err != nil {
		t.Fatal(err)
	}
	if len(ex.typed) != 1 || ex.typed[0] != "launch emacs" {
		t.Fatalf("unexpected typed output: %+v", ex.typed)
	}
}

func TestLeaderEnterDispatchesSingleReturn(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	in, ex, st := newInterpreter(cfg)

	if err := in.Dispatch("command enter", true); err != nil {
		t.Fatal(err)
	}
	if len(ex.keys) != 1 || ex.keys[0].k.Kind != keys.KindEnter || ex.keys[0].action != keys.Click {
		t.Fatalf("expected one Enter click, got %+v", ex.keys)
	}
	if len(ex.typed) != 0 {
		t.Fatal("expected no typed output for a command")
	}
	if st.LastCommand() != "enter" {
		t.Fatalf("expected last command 'enter', got %q", st.LastCommand())
	}
}

func TestRepetitionTimesThenRepeat(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	in, ex, _ := newInterpreter(cfg)

	if err := in.Dispatch("command backspace times three", true); err != nil {
		t.Fatal(err)
	}
	if len(ex.keys) != 3 {
		t.Fatalf("expected 3 backspace clicks, got %d", len(ex.keys))
	}
	if err := in.Dispatch("command repeat", true); err != nil {
		t.Fatal(err)
	}
	if len(ex.keys) != 6 {
		t.Fatalf("expected 6 total backspace clicks after repeat, got %d", len(ex.keys))
	}
}

func TestEmojiDispatch(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	in, ex, st := newInterpreter(cfg)

	if err := in.Dispatch("command emoji fire", true); err != nil {
		t.Fatal(err)
	}
	if len(ex.typed) != 1 || ex.typed[0] != "🔥" {
		t.Fatalf("expected fire emoji typed, got %+v", ex.typed)
	}
	if st.LastTypedLength() != 1 {
		t.Fatalf("expected last typed length 1 (codepoint count), got %d", st.LastTypedLength())
	}
}

func TestCustomCommandMatchesWithoutLeader(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Commands = map[string]string{"open terminal": "kitty"}
	in, ex, _ := newInterpreter(cfg)

	if err := in.Dispatch("open terminal", false); err != nil {
		t.Fatal(err)
	}
	if len(ex.shells) != 1 || ex.shells[0] != "kitty" {
		t.Fatalf("expected custom command spawned, got %+v", ex.shells)
	}
	if len(ex.typed) != 0 {
		t.Fatal("expected no typed fallthrough when a custom command matches")
	}
}

func TestModeSnakeAppliesToDictation(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	in, ex, st := newInterpreter(cfg)

	if err := in.Dispatch("command mode snake", true); err != nil {
		t.Fatal(err)
	}
	if st.Mode() != state.ModeSnake {
		t.Fatalf("expected mode snake, got %v", st.Mode())
	}
	if err := in.Dispatch("hello world", false); err != nil {
		t.Fatal(err)
	}
	if len(ex.typed) != 1 || ex.typed[0] != "hello_world" {
		t.Fatalf("expected snake_case output, got %+v", ex.typed)
	}
}

func TestScratchIssuesBackspacesForLastTypedLength(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	in, ex, st := newInterpreter(cfg)

	if err := in.Dispatch("hello", false); err != nil {
		t.Fatal(err)
	}
	if st.LastTypedLength() != 5 {
		t.Fatalf("expected last typed length 5, got %d", st.LastTypedLength())
	}
	if err := in.Dispatch("command scratch that", true); err != nil {
		t.Fatal(err)
	}
	if len(ex.keys) != 5 {
		t.Fatalf("expected 5 backspaces, got %d", len(ex.keys))
	}
	if st.LastTypedLength() != 0 {
		t.Fatal("expected last typed length reset to 0")
	}
}

func TestHoldAddsToHeldKeysViaExecutor(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	in, ex, _ := newInterpreter(cfg)

	if err := in.Dispatch("command hold w", true); err != nil {
		t.Fatal(err)
	}
	if !ex.held[keys.Unicode('w')] {
		t.Fatal("expected w held")
	}
	if err := in.Dispatch("command release all", true); err != nil {
		t.Fatal(err)
	}
	if len(ex.held) != 0 {
		t.Fatal("expected release all to clear held keys")
	}
}
