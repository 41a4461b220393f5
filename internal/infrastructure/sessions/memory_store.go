package sessions

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

var _ auth.SessionStore = (*MemoryStore)(nil)

// MemoryStore in-process session store for tests and local development
// without Redis.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Set(_ context.Context, p *entity.Principal, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[p.SessionID] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *MemoryStore) Current(_ context.Context, sessionID string) (*entity.Principal, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, nil
	}
	p, ok := DecodePrincipal(entry.data)
	if !ok {
		return nil, nil
	}
	return p, nil
}

// Corrupt overwrites a stored session with unparseable data. Test helper.
func (s *MemoryStore) Corrupt(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[sessionID]; ok {
		entry.data = []byte("{not json")
		s.entries[sessionID] = entry
	}
}
