package panel

import (
	"sync"
	"time"
)

// Store keeps per-session panels in memory. Nothing is persisted; a session
// idle past the TTL is pruned on the next access.
type Store struct {
	mu      sync.Mutex
	client  Generator
	ttl     time.Duration
	entries map[string]*sessionEntry
	now     func() time.Time
}

type sessionEntry struct {
	panel    *Panel
	lastSeen time.Time
}

func NewStore(client Generator, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]*sessionEntry),
		now:     time.Now,
	}
}

// Get returns the panel for the given session id, creating it if needed.
func (s *Store) Get(id string) *Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, entry := range s.entries {
		if key != id && now.Sub(entry.lastSeen) > s.ttl {
			delete(s.entries, key)
		}
	}
	entry, ok := s.entries[id]
	if !ok {
		entry = &sessionEntry{panel: New(s.client)}
		s.entries[id] = entry
	}
	entry.lastSeen = now
	return entry.panel
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
