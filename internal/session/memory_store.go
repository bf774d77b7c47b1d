package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps live sessions in-process. Entries expire after an hour
// of inactivity; expired items are purged every ten minutes.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	if x, found := m.cache.Get(id); found {
		return x.(*Session), nil
	}
	s := New(id)
	m.cache.Set(id, s, cache.DefaultExpiration)
	return s, nil
}

// Save refreshes the expiration; the session pointer is already shared.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.cache.Set(s.ID, s, cache.DefaultExpiration)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}
