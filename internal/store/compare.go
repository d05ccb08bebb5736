package store

import (
	"context"
	"sync"

	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"
	"github.com/platansad/storefront/internal/storage"
)

// CompareStore owns the product comparison list. Unlike the cart and
// wishlist it is purely local: whole product snapshots persisted through the
// storage driver under a fixed key, at most four entries.
type CompareStore struct {
	mu      sync.RWMutex
	items   []models.Product
	storage storage.Storage
	notify  notify.Notifier
}

// NewCompareStore loads the persisted list. A corrupt or missing record
// starts the list empty.
func NewCompareStore(ctx context.Context, store storage.Storage, notifier notify.Notifier) *CompareStore {
	s := &CompareStore{
		items:   []models.Product{},
		storage: store,
		notify:  notifier,
	}
	var saved []models.Product
	found, err := store.Load(ctx, constants.StorageKeyCompareItems, &saved)
	if err != nil {
		logger.Warnw("compare_load_failed", "error", err)
		return s
	}
	if found && saved != nil {
		s.items = saved
	}
	return s
}

// Add appends a product snapshot. Duplicates and overflow are rejected with a
// notification; a category mismatch warns but still adds.
func (s *CompareStore) Add(ctx context.Context, product models.Product) {
	s.mu.Lock()
	for _, item := range s.items {
		if item.ID == product.ID {
			s.mu.Unlock()
			s.notify.Info("Товар вже в списку порівняння")
			return
		}
	}
	if len(s.items) >= constants.CompareMaxItems {
		s.mu.Unlock()
		s.notify.Warning("Можна порівнювати максимум 4 товари")
		return
	}
	if len(s.items) > 0 && s.items[0].Category != product.Category {
		s.notify.Warning("Бажано порівнювати товари однієї категорії")
	}
	s.items = append(s.items, product)
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, items)
	s.notify.Success("Додано до порівняння")
}

// Remove drops a product from the list.
func (s *CompareStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, items)
	s.notify.Success("Видалено з порівняння")
}

// Clear empties the list.
func (s *CompareStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = []models.Product{}
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, items)
	s.notify.Success("Список порівняння очищено")
}

// Contains reports membership by product id.
func (s *CompareStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current list.
func (s *CompareStore) Items() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Count is the number of products in the list.
func (s *CompareStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *CompareStore) snapshotLocked() []models.Product {
	items := make([]models.Product, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CompareStore) persist(ctx context.Context, items []models.Product) {
	if err := s.storage.Save(ctx, constants.StorageKeyCompareItems, items); err != nil {
		logger.Errorw("compare_persist_failed", "error", err)
	}
}
