package spa

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store used by tests and by the seeded
// development mode when no database is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	spas map[int64]Spa
}

func NewMemoryStore(spas ...Spa) *MemoryStore {
	s := &MemoryStore{spas: make(map[int64]Spa, len(spas))}
	for _, rec := range spas {
		s.spas[rec.ID] = rec
	}
	return s
}

func (s *MemoryStore) Find(_ context.Context, id int64) (*Spa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.spas[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

// SetStatus transitions a spa's lifecycle status. The next Resolve observes
// the new value immediately.
func (s *MemoryStore) SetStatus(id int64, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.spas[id]
	if !ok {
		return
	}
	rec.Status = status
	s.spas[id] = rec
}
