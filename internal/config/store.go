package config

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/brunoga/deep"
)

// Store holds the current Configuration snapshot behind an atomic pointer, so
// every event-loop iteration can load it lock-free (spec.md §5, §9 "hot
// reloaded configuration"). This is the atomic-swap half of the teacher's
// config.Watcher; the polling/mtime-hash half is not ported because file
// watching is an out-of-scope external collaborator (spec.md §1) — see
// DESIGN.md.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore builds a Store already holding cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.Swap(cfg)
	return s
}

// Load returns the current snapshot. Safe to call from any goroutine without
// locking.
func (s *Store) Load() *Config {
	return s.current.Load()
}

// Swap installs a new snapshot, deep-copying it first so that a caller who
// continues to mutate the map fields of the *Config they just handed in
// (Commands, Aliases, Inserts, Wrappers) cannot retroactively change a
// snapshot already handed out to readers.
func (s *Store) Swap(cfg *Config) {
	copied, err := deep.Copy(cfg)
	if err != nil {
		// deep.Copy only fails on cyclic or unsupported types; Config has
		// neither, so this is defensive — fall back to the original pointer
		// rather than losing the reload.
		slog.Warn("config: deep copy failed, installing snapshot without isolation", "err", err)
		s.current.Store(cfg)
		return
	}
	s.current.Store(copied)
}

// Reload re-reads path and swaps the store to the new snapshot on success.
// On failure the previous snapshot is kept, matching spec.md §7's
// configuration error policy ("parse failure: log, keep previous snapshot").
func (s *Store) Reload(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return fmt.Errorf("config: reload %q: %w", path, err)
	}
	s.Swap(cfg)
	return nil
}
