// pkg/memcache/session_entries.go
package mem

import (
	"context"
	"sync"
	"time"
)

// SessionEntryStore keeps per-session values server-side for a limited time.
type SessionEntryStore[V any] interface {
	Set(id string, value V, ttl time.Duration)

	// Get returns the value for id if present and not expired. Reading
	// extends nothing; callers refresh with Set.
	Get(id string) (V, bool)

	Delete(id string)

	// Sweep drops expired entries and returns how many were removed.
	Sweep() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type SessionEntries[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func NewSessionEntries[V any]() *SessionEntries[V] {
	return &SessionEntries[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

func (s *SessionEntries[V]) Set(id string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *SessionEntries[V]) Get(id string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	e, ok := s.data[id]
	if !ok || s.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (s *SessionEntries[V]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *SessionEntries[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

func (s *SessionEntries[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// RunJanitor sweeps every interval until ctx is done.
func (s *SessionEntries[V]) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
