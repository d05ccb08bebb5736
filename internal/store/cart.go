// Package store holds the guest client state: cart, wishlist, compare list,
// site settings and the admin session. Each store mirrors backend state
// through mutate-then-refetch: a mutation posts the change, then reloads the
// authoritative list. On failure the last known state stays in place and the
// user gets a notification.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"

	"github.com/shopspring/decimal"
)

// CartStore owns the guest cart replica.
type CartStore struct {
	mu     sync.RWMutex
	items  []models.CartItem
	api    api.CartAPI
	notify notify.Notifier
	userID string
}

// NewCartStore creates an empty cart store for the guest user.
func NewCartStore(cartAPI api.CartAPI, notifier notify.Notifier) *CartStore {
	return &CartStore{
		items:  []models.CartItem{},
		api:    cartAPI,
		notify: notifier,
		userID: constants.GuestUserID,
	}
}

// Fetch reloads the cart from the backend. On failure the cart resets to
// empty rather than keeping stale items.
func (s *CartStore) Fetch(ctx context.Context) {
	items, err := s.api.GetCart(ctx, s.userID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "error", err)
		s.setItems([]models.CartItem{})
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	s.setItems(items)
}

// Add puts a product into the cart and refetches. Silent mode suppresses the
// notifications so a caller can show its own.
func (s *CartStore) Add(ctx context.Context, productID, productName string, quantity int, silent bool) {
	if _, err := s.api.AddToCart(ctx, productID, quantity, s.userID); err != nil {
		logger.Errorw("cart_add_failed", "product_id", productID, "error", err)
		if !silent {
			s.notify.Error("Помилка додавання до кошика")
		}
		return
	}
	s.Fetch(ctx)
	if !silent {
		s.notify.Success(fmt.Sprintf("%s додано до кошика!", productName))
	}
}

// UpdateQuantity changes an item's quantity. Values below 1 are ignored;
// removal is explicit.
func (s *CartStore) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity < 1 {
		return
	}
	if _, err := s.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		logger.Errorw("cart_update_failed", "item_id", itemID, "error", err)
		s.notify.Error("Помилка оновлення кількості")
		return
	}
	s.Fetch(ctx)
}

// Remove deletes one item and refetches.
func (s *CartStore) Remove(ctx context.Context, itemID, productName string, silent bool) {
	if err := s.api.RemoveFromCart(ctx, itemID); err != nil {
		logger.Errorw("cart_remove_failed", "item_id", itemID, "error", err)
		if !silent {
			s.notify.Error("Помилка видалення з кошика")
		}
		return
	}
	s.Fetch(ctx)
	if !silent {
		s.notify.Success(fmt.Sprintf("%s видалено з кошика", productName))
	}
}

// Clear empties the cart. A failure keeps the local state and is only logged;
// the caller (order submission) treats the order as placed either way.
func (s *CartStore) Clear(ctx context.Context) {
	if err := s.api.ClearCart(ctx, s.userID); err != nil {
		logger.Errorw("cart_clear_failed", "error", err)
		return
	}
	s.setItems([]models.CartItem{})
}

// Items returns a copy of the current cart.
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the sum of price*quantity over the cart, computed on read.
func (s *CartStore) Total() models.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.Money{Decimal: total}
}

// Count is the total quantity across all lines.
func (s *CartStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *CartStore) setItems(items []models.CartItem) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}
