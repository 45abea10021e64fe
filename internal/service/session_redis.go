package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dealerdrive-api/internal/model"

	"github.com/redis/go-redis/v9"
)

// sessionRedisKeyPrefix is the Redis key prefix for admin sessions.
const sessionRedisKeyPrefix = "dealerdrive:session:"

// RedisSessionStore is the SessionStore for multi-instance deployments,
// where sessions must survive a restart and be visible to every replica.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Put(ctx context.Context, token string, session model.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	key := sessionRedisKeyPrefix + token
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*model.Session, error) {
	key := sessionRedisKeyPrefix + token
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionRedisKeyPrefix+token).Err()
}
