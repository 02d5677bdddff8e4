package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheDisabled is returned when no redis client was configured.
// Providers treat any cache error as a miss, so a nil client just means
// every call goes upstream.
var ErrCacheDisabled = errors.New("cache disabled")

type CacheService struct {
	client *redis.Client
}

// NewCacheService wraps a redis client. A nil client is allowed and
// disables caching.
func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{
		client: client,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s.client == nil {
		return ErrCacheDisabled
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if s.client == nil {
		return ErrCacheDisabled
	}

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("key not found")
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if s.client == nil {
		return ErrCacheDisabled
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Convenience methods without context (use background context)
func (s *CacheService) SetSimple(key string, value interface{}, expiration time.Duration) error {
	return s.Set(context.Background(), key, value, expiration)
}

func (s *CacheService) GetSimple(key string, dest interface{}) error {
	return s.Get(context.Background(), key, dest)
}
