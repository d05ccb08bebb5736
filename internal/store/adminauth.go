package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotAuthenticated = errors.New("admin session not authenticated")

// AdminAuthStore holds the back-office session: the bearer token and admin
// username, persisted under fixed storage keys. The backend signs and
// validates tokens; the store only peeks at the exp claim to drop tokens that
// are already dead without a round trip.
type AdminAuthStore struct {
	mu       sync.RWMutex
	token    string
	username string
	api      api.AdminAPI
	storage  storage.Storage
}

// NewAdminAuthStore restores a persisted session. An expired token is
// discarded immediately.
func NewAdminAuthStore(ctx context.Context, store storage.Storage, adminAPI api.AdminAPI) *AdminAuthStore {
	s := &AdminAuthStore{
		api:     adminAPI,
		storage: store,
	}

	var token, username string
	if _, err := store.Load(ctx, constants.StorageKeyAdminToken, &token); err != nil {
		logger.Warnw("admin_token_load_failed", "error", err)
	}
	if _, err := store.Load(ctx, constants.StorageKeyAdminUsername, &username); err != nil {
		logger.Warnw("admin_username_load_failed", "error", err)
	}

	if token != "" && tokenExpired(token) {
		logger.Infow("admin_token_expired", "username", username)
		s.clearPersisted(ctx)
		return s
	}

	s.token = token
	s.username = username
	return s
}

// tokenExpired reports whether the token's exp claim is in the past. The
// signature is not checked here; the backend does that on every call.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

// Login exchanges credentials for a token and persists the session.
func (s *AdminAuthStore) Login(ctx context.Context, username, password string) error {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	name := token.Username
	if name == "" {
		name = username
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.username = name
	s.mu.Unlock()

	if err := s.storage.Save(ctx, constants.StorageKeyAdminToken, token.AccessToken); err != nil {
		logger.Errorw("admin_token_persist_failed", "error", err)
	}
	if err := s.storage.Save(ctx, constants.StorageKeyAdminUsername, name); err != nil {
		logger.Errorw("admin_username_persist_failed", "error", err)
	}
	return nil
}

// Verify confirms the session against the backend. Any failure clears the
// session so a half-dead token cannot linger.
func (s *AdminAuthStore) Verify(ctx context.Context) error {
	if s.Token() == "" {
		return ErrNotAuthenticated
	}
	username, err := s.api.Verify(ctx)
	if err != nil {
		s.Logout(ctx)
		return err
	}
	if username != "" {
		s.mu.Lock()
		s.username = username
		s.mu.Unlock()
		if err := s.storage.Save(ctx, constants.StorageKeyAdminUsername, username); err != nil {
			logger.Errorw("admin_username_persist_failed", "error", err)
		}
	}
	return nil
}

// Logout drops the session and both persisted keys.
func (s *AdminAuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.username = ""
	s.mu.Unlock()
	s.clearPersisted(ctx)
}

func (s *AdminAuthStore) clearPersisted(ctx context.Context) {
	if err := s.storage.Delete(ctx, constants.StorageKeyAdminToken); err != nil {
		logger.Errorw("admin_token_clear_failed", "error", err)
	}
	if err := s.storage.Delete(ctx, constants.StorageKeyAdminUsername); err != nil {
		logger.Errorw("admin_username_clear_failed", "error", err)
	}
}

// Token returns the current bearer token, empty when logged out. Wired into
// the API client as its token source.
func (s *AdminAuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Username returns the logged-in admin name.
func (s *AdminAuthStore) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Authenticated reports whether a session is held.
func (s *AdminAuthStore) Authenticated() bool {
	return s.Token() != ""
}
