package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lillia/models"
	"lillia/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore is the persistence contract for in-progress wizard sessions.
// Serialization must round-trip losslessly; an absent session surfaces as
// ErrSessionNotFound.
type SessionStore interface {
	Save(ctx context.Context, session *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL standing in for the
// browser tab's lifetime.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a store over the given client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = utils.SessionCacheTTL
	}
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.SessionCachePrefix+session.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}
