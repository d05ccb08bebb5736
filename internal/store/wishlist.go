package store

import (
	"context"
	"sync"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"
)

// WishlistStore owns the guest wishlist replica. Membership is keyed by
// product id; removal resolves the backend record id locally first.
type WishlistStore struct {
	mu     sync.RWMutex
	items  []models.WishlistItem
	api    api.WishlistAPI
	notify notify.Notifier
	userID string
}

// NewWishlistStore creates an empty wishlist store for the guest user.
func NewWishlistStore(wishlistAPI api.WishlistAPI, notifier notify.Notifier) *WishlistStore {
	return &WishlistStore{
		items:  []models.WishlistItem{},
		api:    wishlistAPI,
		notify: notifier,
		userID: constants.GuestUserID,
	}
}

// Fetch reloads the wishlist. On failure the previous state stays in place.
func (s *WishlistStore) Fetch(ctx context.Context) {
	items, err := s.api.GetWishlist(ctx, s.userID)
	if err != nil {
		logger.Errorw("wishlist_fetch_failed", "error", err)
		return
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Contains reports wishlist membership by product id. Pure local lookup.
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) itemByProduct(productID string) (models.WishlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return models.WishlistItem{}, false
}

// Add creates a membership record and refetches.
func (s *WishlistStore) Add(ctx context.Context, productID string) {
	if _, err := s.api.AddToWishlist(ctx, productID, s.userID); err != nil {
		logger.Errorw("wishlist_add_failed", "product_id", productID, "error", err)
		s.notify.Error("Помилка додавання до списку бажань")
		return
	}
	s.Fetch(ctx)
	s.notify.Success("Додано до списку бажань")
}

// Remove resolves the record for a product and deletes it. A product that is
// not wishlisted is a no-op.
func (s *WishlistStore) Remove(ctx context.Context, productID string) {
	item, ok := s.itemByProduct(productID)
	if !ok {
		return
	}
	if err := s.api.RemoveFromWishlist(ctx, item.ID); err != nil {
		logger.Errorw("wishlist_remove_failed", "product_id", productID, "error", err)
		s.notify.Error("Помилка видалення зі списку бажань")
		return
	}
	s.Fetch(ctx)
	s.notify.Success("Видалено зі списку бажань")
}

// Toggle flips membership for a product.
func (s *WishlistStore) Toggle(ctx context.Context, productID string) {
	if s.Contains(productID) {
		s.Remove(ctx, productID)
		return
	}
	s.Add(ctx, productID)
}

// Items returns a copy of the current wishlist.
func (s *WishlistStore) Items() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.WishlistItem, len(s.items))
	copy(items, s.items)
	return items
}

// Count is the number of wishlisted products.
func (s *WishlistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
