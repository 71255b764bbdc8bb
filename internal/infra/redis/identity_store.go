package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// IdentityStore keeps session identifiers in Redis without expiry, so a
// client keeps its chat id across restarts and instances.
type IdentityStore struct {
	client *redis.Client
}

func NewIdentityStore(client *redis.Client) *IdentityStore {
	return &IdentityStore{client: client}
}

func (s *IdentityStore) Get(ctx context.Context, key string) (string, bool, error) {
	id, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func (s *IdentityStore) SetIfAbsent(ctx context.Context, key, value string) (string, error) {
	ok, err := s.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return "", err
	}
	if ok {
		return value, nil
	}
	return s.client.Get(ctx, key).Result()
}
