// File: internal/infra/memory/settings_repo.go
package memory

import (
	"context"
	"sync"

	"happybot/internal/domain"
	"happybot/internal/domain/ports/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo is the in-process fallback settings store, used when Redis is
// not configured or unreachable. Contents are lost on restart, which matches
// the defaults-on-miss contract.
type SettingsRepo struct {
	mu    sync.Mutex
	blobs map[string]repository.Settings
}

func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{blobs: make(map[string]repository.Settings)}
}

func (s *SettingsRepo) Load(ctx context.Context, ownerID string) (*repository.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.blobs[ownerID]; ok {
		cp := b
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (s *SettingsRepo) Save(ctx context.Context, ownerID string, settings *repository.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[ownerID] = *settings
	return nil
}
