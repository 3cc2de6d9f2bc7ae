// Package arena provides the dense, id-keyed registries backing the match
// state. Handles are auto-incrementing integers; entries are never removed,
// dead entities are tombstoned by their own flags so an id stays a stable
// lookup key for the remainder of the match.
package arena

import "sync"

// Store is a dense registry keyed by insertion order. The zero handle is the
// first entry. Guarded by a RWMutex because the operational HTTP surface
// reads snapshots while the (single-threaded) combat loop writes.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewStore returns an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Add registers an item and returns its handle.
func (s *Store[T]) Add(item T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return len(s.items) - 1
}

// Get returns the item for a handle.
func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 0 || id >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[id], true
}

// Len returns the number of registered items, tombstoned ones included.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns a snapshot copy of every registered item.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Reset drops every entry. Used by match teardown; no state may leak across
// matches.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}
