package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"listinglab/internal/dataset"
)

type memoryEntry struct {
	table     *dataset.Table
	expiresAt time.Time
}

// MemoryStore é usado quando REDIS_URL não está configurado.
type MemoryStore struct {
	TTL time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		TTL:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Put(_ context.Context, t *dataset.Table) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	id := uuid.New().String()
	s.entries[id] = memoryEntry{table: t, expiresAt: s.now().Add(s.TTL)}
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*dataset.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	e.expiresAt = s.now().Add(s.TTL)
	s.entries[id] = e
	return e.table, nil
}

func (s *MemoryStore) evictExpired() {
	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
