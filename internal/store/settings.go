package store

import (
	"context"
	"sync"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/models"
)

// SettingsStore caches the public site settings. Any load failure falls back
// to the built-in defaults so the storefront always renders.
type SettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
	api      api.SettingsAPI
}

// NewSettingsStore starts with the defaults; call Refresh to pull the live
// settings.
func NewSettingsStore(settingsAPI api.SettingsAPI) *SettingsStore {
	return &SettingsStore{
		settings: models.DefaultSettings(),
		api:      settingsAPI,
	}
}

// Refresh reloads the settings from the backend, replacing the whole object.
// On failure the current settings stay in place.
func (s *SettingsStore) Refresh(ctx context.Context) {
	settings, err := s.api.GetPublicSettings(ctx)
	if err != nil {
		logger.Warnw("settings_refresh_failed", "error", err, "fallback", "current")
		return
	}
	s.mu.Lock()
	s.settings = *settings
	s.mu.Unlock()
}

// Get returns the current settings snapshot.
func (s *SettingsStore) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
