package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// kvRecord is the persisted row for one storage key.
type kvRecord struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (kvRecord) TableName() string {
	return "client_state"
}

// GormStorage keeps keys in a single key-value table, sqlite or postgres.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage opens the database and migrates the state table.
func NewGormStorage(driver, dsn string) (*GormStorage, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %s", ErrDriverUnsupported, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoadFailed, driver, err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrSaveFailed, err)
	}
	return &GormStorage{db: db}, nil
}

func (s *GormStorage) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	var rec kvRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	if err := json.Unmarshal([]byte(rec.Value), dest); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrLoadFailed, key, err)
	}
	return true, nil
}

func (s *GormStorage) Save(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrSaveFailed, key, err)
	}
	rec := kvRecord{Key: key, Value: string(payload), UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Save(&rec).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *GormStorage) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&kvRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}
