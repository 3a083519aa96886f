package state

import (
	"sync"
	"sync/atomic"

	"github.com/sqrew/ss9k/pkg/keys"
)

// Store is the process-wide C10 cell bundle. It is safe for concurrent use;
// every method takes the short lock only for its own critical section.
type Store struct {
	mu              sync.Mutex
	mode            Mode
	lastCommand     string
	lastTypedLength int

	session atomic.Uint64

	keyRepeatMs atomic.Uint64

	Held *keys.Set

	repeatRunning atomic.Bool
}

func NewStore(keyRepeatMs uint64) *Store {
	s := &Store{Held: keys.NewSet()}
	s.keyRepeatMs.Store(keyRepeatMs)
	return s
}

func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Store) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

func (s *Store) LastCommand() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCommand
}

func (s *Store) SetLastCommand(cmd string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCommand = cmd
}

func (s *Store) LastTypedLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTypedLength
}

func (s *Store) SetLastTypedLength(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTypedLength = n
}

// KeyRepeatMs returns the interval the held-key repeat thread sleeps between
// click cycles. Hot-reloadable independent of the config snapshot swap so the
// repeat thread need not re-read the whole Configuration each cycle.
func (s *Store) KeyRepeatMs() uint64 {
	return s.keyRepeatMs.Load()
}

func (s *Store) SetKeyRepeatMs(ms uint64) {
	s.keyRepeatMs.Store(ms)
}

// NextSession issues a new monotonically increasing recording-session id.
// Only the holder of the returned id may close that session's capture gate
// from within a timeout task (see internal/activation).
func (s *Store) NextSession() uint64 {
	return s.session.Add(1)
}

func (s *Store) CurrentSession() uint64 {
	return s.session.Load()
}

// TryStartRepeat reports whether the caller just became the sole owner of
// the held-key repeat thread (compare-exchange false->true). A second call
// while the thread is alive returns false so callers never spawn a second
// instance.
func (s *Store) TryStartRepeat() bool {
	return s.repeatRunning.CompareAndSwap(false, true)
}

// StopRepeat clears the running flag; called by the repeat thread itself
// right before it returns, once Held is empty.
func (s *Store) StopRepeat() {
	s.repeatRunning.Store(false)
}

func (s *Store) RepeatRunning() bool {
	return s.repeatRunning.Load()
}
