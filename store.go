package loggy

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// entryStore holds the ordered entry collection. All synchronization for the
// collection lives here; the purge guard is never taken around these calls,
// so appends and scans stay unaffected by a running eviction pass.
type entryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func newEntryStore() *entryStore {
	return &entryStore{}
}

// Append inserts at the tail.
func (s *entryStore) Append(e Entry) {
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
}

// RemoveOldest removes and returns the head entry. The second return is
// false when the store is empty.
func (s *entryStore) RemoveOldest() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	head := s.entries[0]
	s.entries = s.entries[1:]
	return head, true
}

// Len reports the current size. Advisory under concurrent appends.
func (s *entryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Scan returns a snapshot of entries oldest-first. A non-zero ref filters by
// reference id; a non-empty caller filters case-insensitively.
func (s *entryStore) Scan(ref uuid.UUID, caller string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if ref != uuid.Nil && e.ReferenceID != ref {
			continue
		}
		if caller != "" && !strings.EqualFold(e.Caller, caller) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Clear drops all entries currently present and reports how many.
func (s *entryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = nil
	return n
}
