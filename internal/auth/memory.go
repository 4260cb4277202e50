package auth

import (
	"context"
	"sync"
	"time"
)

var _ UserStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory UserStore used by tests and by the seeded
// development mode when no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[int64]*AdminUser
	now   func() time.Time
	touch error // injected failure for tests
}

func NewMemoryStore(users ...AdminUser) *MemoryStore {
	s := &MemoryStore{
		byID: make(map[int64]*AdminUser, len(users)),
		now:  time.Now,
	}
	for i := range users {
		u := users[i]
		s.byID[u.ID] = &u
	}
	return s
}

func (s *MemoryStore) FindActiveByUsername(_ context.Context, username string) (*AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.byID {
		if u.Username == username && u.Active {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindActiveByID(_ context.Context, id int64) (*AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok || !u.Active {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) TouchLastLogin(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touch != nil {
		return s.touch
	}
	if u, ok := s.byID[id]; ok {
		t := s.now().UTC()
		u.LastLogin = &t
	}
	return nil
}

// FailTouch makes subsequent TouchLastLogin calls return err. Login must
// survive that failure, so tests need a way to inject it.
func (s *MemoryStore) FailTouch(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch = err
}

// LastLogin reports the stored last-login timestamp for assertions.
func (s *MemoryStore) LastLogin(id int64) *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.byID[id]; ok {
		return u.LastLogin
	}
	return nil
}
