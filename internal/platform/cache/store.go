package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Store is an in-process TTL cache that never evicts on expiry. Entries
// older than the TTL stop being served by Get but stay reachable through
// GetStale, so callers can fall back to the last known value when a
// refresh fails. State lives only in memory and is lost on restart.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key when its entry is younger than the TTL.
// A zero TTL never expires entries.
func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(e.fetchedAt) >= s.ttl {
		return nil, false
	}

	return e.value, true
}

// GetStale returns the value for key regardless of age, with the time it
// was stored.
func (s *Store) GetStale(_ context.Context, key string) (any, time.Time, bool) {
	if key == "" {
		return nil, time.Time{}, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, time.Time{}, false
	}

	return e.value, e.fetchedAt, true
}

// FetchedAt reports when key was last stored.
func (s *Store) FetchedAt(_ context.Context, key string) (time.Time, bool) {
	if key == "" {
		return time.Time{}, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return time.Time{}, false
	}

	return e.fetchedAt, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		fetchedAt: s.now(),
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Clear drops every entry.
func (s *Store) Clear(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// Len reports the number of entries, fresh and stale alike.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
