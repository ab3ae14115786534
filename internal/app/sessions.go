package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
)

type sessionEntry struct {
	orch     *Orchestrator
	lastSeen time.Time
}

// Sessions keeps one Orchestrator per browser session.
type Sessions struct {
	gen Generator
	log *logger.Logger
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func NewSessions(gen Generator, ttl time.Duration, log *logger.Logger) *Sessions {
	if log == nil {
		log = logger.NewNop()
	}
	return &Sessions{
		gen:     gen,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry),
	}
}

// Get returns the Orchestrator for id, creating a fresh session when id is
// empty, malformed or expired. The returned id is the one to hand back to
// the client.
func (s *Sessions) Get(id string) (string, *Orchestrator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, err := uuid.Parse(id); err == nil {
		if e, ok := s.entries[id]; ok && now.Sub(e.lastSeen) <= s.ttl {
			e.lastSeen = now
			return id, e.orch
		}
	}

	id = uuid.NewString()
	orch := NewOrchestrator(s.gen, s.log.With("session", id))
	s.entries[id] = &sessionEntry{orch: orch, lastSeen: now}
	return id, orch
}

// Lookup returns the live Orchestrator for id without creating one.
func (s *Sessions) Lookup(id string) (*Orchestrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		return nil, false
	}
	e.lastSeen = now
	return e.orch, true
}

// Evict drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Sessions) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Janitor runs Evict every interval until ctx is done.
func (s *Sessions) Janitor(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Evict(); n > 0 {
				s.log.Debug("evicted idle sessions", "count", n)
			}
		}
	}
}
