package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранит отозванные токены в памяти процесса.
// Используется, когда Redis выключен в конфигурации.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore создает хранилище отозванных токенов в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke помечает токен отозванным до момента expiresAt
func (s *MemoryStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	if expiresAt.After(now) {
		s.revoked[tokenID] = expiresAt
	}
	return nil
}

// IsRevoked проверяет, был ли токен отозван
func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !expiresAt.After(s.now()) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) pruneLocked(now time.Time) {
	for id, expiresAt := range s.revoked {
		if !expiresAt.After(now) {
			delete(s.revoked, id)
		}
	}
}
