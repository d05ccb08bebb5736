package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/platansad/storefront/internal/config"
)

var (
	ErrDriverUnsupported = errors.New("storage driver unsupported")
	ErrLoadFailed        = errors.New("storage load failed")
	ErrSaveFailed        = errors.New("storage save failed")
)

// Storage is the key-value persistence port behind the client-state stores.
// Load reports whether the key existed; a missing key is not an error.
type Storage interface {
	Load(ctx context.Context, key string, dest interface{}) (bool, error)
	Save(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// Open builds the storage driver selected by config.
func Open(cfg config.StorageConfig) (Storage, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "", "file":
		return NewFileStorage(cfg.Dir)
	case "redis":
		return NewRedisStorage(), nil
	case "sqlite", "postgres", "postgresql":
		return NewGormStorage(driver, cfg.DSN)
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrDriverUnsupported, cfg.Driver)
	}
}
