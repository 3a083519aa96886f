package keys

import "sync"

type discriminant struct {
	kind Kind
	r    rune
	n    int
}

// Set is the held-keys set: equality by Key.Discriminant(), not by the full
// Key value, so every arrow-up insertion collapses onto one member while
// distinct Unicode letters remain distinct members.
type Set struct {
	mu      sync.Mutex
	members map[discriminant]Key
}

func NewSet() *Set {
	return &Set{members: make(map[discriminant]Key)}
}

// Add inserts k, returning true if it was not already present.
func (s *Set) Add(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := keyDiscriminant(k)
	if _, ok := s.members[d]; ok {
		return false
	}
	s.members[d] = k
	return true
}

// Remove deletes the member with the same discriminant as k, returning true
// if one was present.
func (s *Set) Remove(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := keyDiscriminant(k)
	if _, ok := s.members[d]; !ok {
		return false
	}
	delete(s.members, d)
	return true
}

// Clear empties the set and returns the keys that were present, so the
// caller can release each outside any lock.
func (s *Set) Clear() []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Key, 0, len(s.members))
	for _, k := range s.members {
		out = append(out, k)
	}
	s.members = make(map[discriminant]Key)
	return out
}

// Snapshot returns a copy of the current members without clearing the set.
func (s *Set) Snapshot() []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Key, 0, len(s.members))
	for _, k := range s.members {
		out = append(out, k)
	}
	return out
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

func keyDiscriminant(k Key) discriminant {
	kind, r, n := k.Discriminant()
	return discriminant{kind: kind, r: r, n: n}
}
