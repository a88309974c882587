package stats

import (
	"sync"

	"elimination-tracker/internal/core/domain"

	"go.uber.org/atomic"
)

type entry struct {
	name  string
	kills *atomic.Int64
}

// Store is the session kill cache. Counters are bumped under the read lock so
// concurrent credits to existing players never contend on the map lock.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []*entry
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

func (s *Store) Increment(name string) {
	s.mu.RLock()
	e, ok := s.entries[name]
	if ok {
		e.kills.Inc()
		s.mu.RUnlock()
		return
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok = s.entries[name]
	if !ok {
		e = &entry{name: name, kills: atomic.NewInt64(0)}
		s.entries[name] = e
		s.order = append(s.order, e)
	}
	e.kills.Inc()
}

func (s *Store) Get(name string) domain.PlayerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return domain.PlayerStats{Name: name}
	}
	return domain.PlayerStats{Name: name, Kills: int(e.kills.Load())}
}

// Lookup reports whether name has been credited this session.
func (s *Store) Lookup(name string) (domain.PlayerStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return domain.PlayerStats{Name: name}, false
	}
	return domain.PlayerStats{Name: name, Kills: int(e.kills.Load())}, true
}

func (s *Store) GetAll() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(domain.Snapshot, 0, len(s.order))
	for _, e := range s.order {
		snap = append(snap, domain.PlayerStats{Name: e.name, Kills: int(e.kills.Load())})
	}
	return snap
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry)
	s.order = nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
