package session

import (
	"context"
	"sync"
	"time"
)

// entry holds one session's turns and the last time it was touched.
type entry struct {
	turns    []Turn
	lastSeen time.Time
}

// MemoryStore is an in-memory Store with a per-session turn cap and TTL-based
// eviction of idle sessions. Expired sessions are dropped lazily on read and
// swept opportunistically during writes, so memory stays bounded under many
// distinct users without a background goroutine.
//
// This type is safe for concurrent use.
type MemoryStore struct {
	maxTurns int
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*entry
	sweepN   int

	// now is swapped in tests to control time.
	now func() time.Time
}

// NewMemoryStore constructs a MemoryStore. Non-positive maxTurns or ttl fall
// back to DefaultMaxTurns / DefaultTTL.
func NewMemoryStore(maxTurns int, ttl time.Duration) *MemoryStore {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		maxTurns: maxTurns,
		ttl:      ttl,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// History returns a copy of the turns for id, oldest first. An unknown or
// expired session yields an empty slice.
func (s *MemoryStore) History(_ context.Context, id string) ([]Turn, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return []Turn{}, nil
	}
	if now.Sub(e.lastSeen) >= s.ttl {
		delete(s.sessions, id)
		return []Turn{}, nil
	}
	out := make([]Turn, len(e.turns))
	copy(out, e.turns)
	return out, nil
}

// Append pushes the user/assistant pair, creating the session lazily, then
// trims to the newest maxTurns turns (oldest evicted first).
func (s *MemoryStore) Append(_ context.Context, id string, userTurn, assistantTurn Turn) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Sweep idle sessions every so many writes. Done before touching the
	// target entry so a stale session restarts from empty history.
	s.sweepN++
	if s.sweepN >= 256 {
		for k, e := range s.sessions {
			if now.Sub(e.lastSeen) >= s.ttl {
				delete(s.sessions, k)
			}
		}
		s.sweepN = 0
	}

	e, ok := s.sessions[id]
	if !ok || now.Sub(e.lastSeen) >= s.ttl {
		e = &entry{}
		s.sessions[id] = e
	}

	e.turns = append(e.turns, userTurn, assistantTurn)
	if over := len(e.turns) - s.maxTurns; over > 0 {
		e.turns = append(e.turns[:0:0], e.turns[over:]...)
	}
	e.lastSeen = now
	return nil
}

// Len reports the number of live (possibly stale, not yet swept) sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
