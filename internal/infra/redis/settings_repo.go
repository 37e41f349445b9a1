package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	red "github.com/go-redis/redis/v8"

	"happybot/internal/domain"
	"happybot/internal/domain/ports/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo persists the per-owner settings blob in Redis. Blobs have no
// TTL: unlike conversational state, settings survive between visits.
type SettingsRepo struct {
	client RedisClient
}

func NewSettingsRepo(client RedisClient) repository.SettingsRepository {
	return &SettingsRepo{client: client}
}

func (s *SettingsRepo) key(ownerID string) string {
	return fmt.Sprintf("happybot:settings:%s", ownerID)
}

func (s *SettingsRepo) Load(ctx context.Context, ownerID string) (*repository.Settings, error) {
	data, err := s.client.Get(ctx, s.key(ownerID))
	if err != nil {
		if errors.Is(err, red.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var settings repository.Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsRepo) Save(ctx context.Context, ownerID string, settings *repository.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(ownerID), data, 0)
}
