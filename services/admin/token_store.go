// File: services/admin/token_store.go
package admin

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const tokenKeyPrefix = "auth:token:"

// RedisTokenStore keeps the token allow-list in the auth Redis DB.
type RedisTokenStore struct {
	Client *redis.Client
}

func (s *RedisTokenStore) Save(ctx context.Context, tokenHash, adminID string, ttl time.Duration) error {
	return s.Client.Set(ctx, tokenKeyPrefix+tokenHash, adminID, ttl).Err()
}

func (s *RedisTokenStore) Lookup(ctx context.Context, tokenHash string) (string, error) {
	val, err := s.Client.Get(ctx, tokenKeyPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenHash string) error {
	return s.Client.Del(ctx, tokenKeyPrefix+tokenHash).Err()
}
