package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dkireev/filedepot/internal/shared"
)

type memoryValue struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-key expiration, used in tests
// and single-node development setups. Expired keys are dropped lazily on read.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryValue

	// now is the clock; tests override it to simulate TTL expiry.
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryValue),
		now:  time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	v, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return "", shared.ErrorNotFound
	}
	if s.now().After(v.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return "", shared.ErrorNotFound
	}
	return v.value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = memoryValue{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return shared.ErrorNotFound
	}
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
