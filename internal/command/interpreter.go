package command

import (
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sqrew/ss9k/internal/config"
	"github.com/sqrew/ss9k/internal/state"
)

// Interpreter is C8: it satisfies internal/worker.Dispatcher. Grounded on
// original_source/src/commands.rs's execute_command, split across this
// package's files by grammar stage (alias.go, builtin.go, shiftspell.go,
// insertwrap.go, mathcode.go, lookup.go).
type Interpreter struct {
	Config   *config.Store
	Store    *state.Store
	Executor Executor

	// matchCache memoizes normalizeForMatching(phrase) for custom-command
	// keys, since the same phrase set is matched against on every dictation
	// turn that misses the leader prefix (spec.md §4.8 step 7). Sized
	// generously; a miss just recomputes.
	matchCache *lru.Cache[string, string]

	// now is overridable for deterministic insert-placeholder tests.
	now func() time.Time

	// lastRepeatCount remembers how many times Last-Command last ran, so a
	// bare "repeat" replays the same count rather than collapsing to one
	// (spec.md §8 scenario 3: "backspace times three" then "repeat" yields
	// three more backspaces, not one).
	lastRepeatCount int
}

// New builds an Interpreter wired to executor, the shared state store, and
// a hot-swappable configuration snapshot.
func New(cfgStore *config.Store, store *state.Store, executor Executor) *Interpreter {
	cache, _ := lru.New[string, string](256)
	return &Interpreter{
		Config:     cfgStore,
		Store:      store,
		Executor:   executor,
		matchCache: cache,
		now:        time.Now,
	}
}

// Dispatch implements worker.Dispatcher. commandMode is informational only:
// the worker has already prepended the leader word to text when it was
// set, so the grammar below needs no separate branch for it.
func (in *Interpreter) Dispatch(text string, commandMode bool) error {
	cfg := in.Config.Load()

	aliased := applyAliases(text, cfg.Aliases)
	trimmed := normalizeForDispatch(aliased)

	leaderPrefix := strings.ToLower(cfg.Leader) + " "
	if after, ok := strings.CutPrefix(trimmed, leaderPrefix); ok {
		in.dispatchCommand(cfg, strings.TrimSpace(after))
		return nil
	}

	if in.dispatchCustomCommand(cfg, trimmed) {
		return nil
	}

	in.dispatchDictation(aliased)
	return nil
}

func (in *Interpreter) dispatchCommand(cfg *config.Config, cmd string) {
	if rem, ok := strings.CutPrefix(cmd, "emoji "); ok {
		in.executeEmoji(strings.TrimSpace(rem))
		return
	}
	if rem, ok := strings.CutPrefix(cmd, "punctuation "); ok {
		in.executePunctuation(strings.TrimSpace(rem))
		return
	}
	if rem, ok := strings.CutPrefix(cmd, "punk "); ok {
		in.executePunctuation(strings.TrimSpace(rem))
		return
	}
	if rem, ok := strings.CutPrefix(cmd, "insert "); ok {
		in.executeInsert(cfg.Inserts, strings.TrimSpace(rem))
		return
	}
	if rem, ok := strings.CutPrefix(cmd, "wrap "); ok {
		in.executeWrap(cfg.Wrappers, strings.TrimSpace(rem))
		return
	}
	in.executeBuiltin(cmd)
}

// dispatchCustomCommand matches trimmed against cfg.Commands using the
// fuzzy normalizer (spec.md §4.8 step 7); returns true if a match ran.
func (in *Interpreter) dispatchCustomCommand(cfg *config.Config, trimmed string) bool {
	if len(cfg.Commands) == 0 {
		return false
	}
	normalizedInput := normalizeForMatching(trimmed)
	for phrase, shellCmd := range cfg.Commands {
		if in.normalizeCached(phrase) == normalizedInput {
			if err := in.Executor.SpawnShell(shellCmd); err != nil {
				slog.Error("custom command spawn failed", "phrase", phrase, "err", err)
			}
			return true
		}
	}
	return false
}

func (in *Interpreter) normalizeCached(phrase string) string {
	if v, ok := in.matchCache.Get(phrase); ok {
		return v
	}
	v := normalizeForMatching(phrase)
	in.matchCache.Add(phrase, v)
	return v
}

// dispatchDictation applies the current case mode (if any) and types the
// result, updating Last-Typed-Length (spec.md §4.8 step 8).
func (in *Interpreter) dispatchDictation(aliased string) {
	mode := in.Store.Mode()
	out := aliased
	if mode != state.ModeOff {
		out = applyMode(mode, aliased)
	}
	if err := in.Executor.Type(out); err != nil {
		slog.Error("dictation type failed", "err", err)
	}
}
