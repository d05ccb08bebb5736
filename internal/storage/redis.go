package storage

import (
	"context"
	"fmt"

	"github.com/platansad/storefront/internal/cache"
)

// RedisStorage persists keys through the shared cache client with no TTL.
type RedisStorage struct{}

// NewRedisStorage requires cache.InitRedis to have run with the cache enabled.
func NewRedisStorage() *RedisStorage {
	return &RedisStorage{}
}

func (s *RedisStorage) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !cache.Enabled() {
		return false, fmt.Errorf("%w: redis cache disabled", ErrLoadFailed)
	}
	found, err := cache.GetJSON(ctx, storageKey(key), dest)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return found, nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, value interface{}) error {
	if !cache.Enabled() {
		return fmt.Errorf("%w: redis cache disabled", ErrSaveFailed)
	}
	if err := cache.SetJSON(ctx, storageKey(key), value, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	if !cache.Enabled() {
		return fmt.Errorf("%w: redis cache disabled", ErrSaveFailed)
	}
	if err := cache.Del(ctx, storageKey(key)); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func storageKey(key string) string {
	return "storage:" + key
}
