package query

// Process-wide cache for remote reads

import (
	"strings"
	"sync"
	"time"
)

// Key identifies one cached read as an ordered sequence of segments,
// e.g. Key{"/api/courses/all"} or Key{"/api/admin/users", "0"}.
type Key []string

// String returns the canonical cache identity for the key.
func (k Key) String() string {
	return strings.Join(k, "|")
}

type entry struct {
	data      any
	fetchedAt time.Time
	stale     bool
}

// Store is the application-wide query cache. One instance is created at
// startup and handed to every page; tests construct their own.
type Store struct {
	mu            sync.Mutex
	entries       map[string]*entry
	invalidations map[string]int
}

// NewStore creates an empty cache.
func NewStore() *Store {
	return &Store{
		entries:       make(map[string]*entry),
		invalidations: make(map[string]int),
	}
}

// Invalidate marks every given key stale so the next Fetch refetches.
// Keys with no cached entry are still counted, so a later Fetch starts fresh.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		id := k.String()
		s.invalidations[id]++
		if e, ok := s.entries[id]; ok {
			e.stale = true
		}
	}
}

// InvalidationCount returns how many times the key has been invalidated.
func (s *Store) InvalidationCount(k Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidations[k.String()]
}

// IsStale reports whether a cached entry for the key exists and is stale.
func (s *Store) IsStale(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[k.String()]
	return ok && e.stale
}

// Reset drops all cached entries and invalidation counts.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	s.invalidations = make(map[string]int)
}

// get returns the cached entry if present, fresh, and younger than staleTime
// (zero staleTime means no age limit).
func (s *Store) get(k Key, staleTime time.Duration) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[k.String()]
	if !ok || e.stale {
		return nil, false
	}
	if staleTime > 0 && time.Since(e.fetchedAt) > staleTime {
		return nil, false
	}
	return e.data, true
}

// put stores a fresh value for the key.
func (s *Store) put(k Key, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k.String()] = &entry{data: data, fetchedAt: time.Now()}
}
