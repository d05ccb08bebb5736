package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"
)

var errBackendDown = errors.New("backend down")

// recorder collects notifications for assertions.
type recorder struct {
	mu    sync.Mutex
	notes []notify.Notification
}

func (r *recorder) push(level notify.Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, notify.Notification{Level: level, Message: msg})
}

func (r *recorder) Success(msg string) { r.push(notify.LevelSuccess, msg) }
func (r *recorder) Error(msg string)   { r.push(notify.LevelError, msg) }
func (r *recorder) Info(msg string)    { r.push(notify.LevelInfo, msg) }
func (r *recorder) Warning(msg string) { r.push(notify.LevelWarning, msg) }

func (r *recorder) last() (notify.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return notify.Notification{}, false
	}
	return r.notes[len(r.notes)-1], true
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}

// fakeCartAPI serves a mutable backend cart.
type fakeCartAPI struct {
	items      []models.CartItem
	failAdd    bool
	failUpdate bool
	failGet    bool
	failClear  bool
	updates    int
	nextID     int
}

func (f *fakeCartAPI) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	if f.failGet {
		return nil, errBackendDown
	}
	items := make([]models.CartItem, len(f.items))
	copy(items, f.items)
	return items, nil
}

func (f *fakeCartAPI) AddToCart(ctx context.Context, productID string, quantity int, userID string) (*models.CartItem, error) {
	if f.failAdd {
		return nil, errBackendDown
	}
	for i := range f.items {
		if f.items[i].ProductID == productID {
			f.items[i].Quantity += quantity
			return &f.items[i], nil
		}
	}
	f.nextID++
	item := models.CartItem{
		ID:        fmt.Sprintf("item-%d", f.nextID),
		ProductID: productID,
		Quantity:  quantity,
		UserID:    userID,
	}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeCartAPI) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	f.updates++
	if f.failUpdate {
		return nil, errBackendDown
	}
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items[i].Quantity = quantity
			return &f.items[i], nil
		}
	}
	return nil, errBackendDown
}

func (f *fakeCartAPI) RemoveFromCart(ctx context.Context, itemID string) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartAPI) ClearCart(ctx context.Context, userID string) error {
	if f.failClear {
		return errBackendDown
	}
	f.items = nil
	return nil
}

// fakeWishlistAPI serves a mutable backend wishlist.
type fakeWishlistAPI struct {
	items    []models.WishlistItem
	failAdd  bool
	removed  []string
	nextID   int
	failList bool
}

func (f *fakeWishlistAPI) GetWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	if f.failList {
		return nil, errBackendDown
	}
	items := make([]models.WishlistItem, len(f.items))
	copy(items, f.items)
	return items, nil
}

func (f *fakeWishlistAPI) AddToWishlist(ctx context.Context, productID, userID string) (*models.WishlistItem, error) {
	if f.failAdd {
		return nil, errBackendDown
	}
	f.nextID++
	item := models.WishlistItem{ID: fmt.Sprintf("w-%d", f.nextID), ProductID: productID, UserID: userID}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeWishlistAPI) RemoveFromWishlist(ctx context.Context, itemID string) error {
	f.removed = append(f.removed, itemID)
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

// fakeSettingsAPI serves one settings object or an error.
type fakeSettingsAPI struct {
	settings *models.Settings
	fail     bool
}

func (f *fakeSettingsAPI) GetPublicSettings(ctx context.Context) (*models.Settings, error) {
	if f.fail {
		return nil, errBackendDown
	}
	return f.settings, nil
}

// fakeAdminAPI serves login/verify.
type fakeAdminAPI struct {
	token      string
	username   string
	failLogin  bool
	failVerify bool
}

func (f *fakeAdminAPI) Login(ctx context.Context, username, password string) (*models.AdminToken, error) {
	if f.failLogin {
		return nil, errBackendDown
	}
	return &models.AdminToken{AccessToken: f.token, TokenType: "bearer", Username: f.username}, nil
}

func (f *fakeAdminAPI) Verify(ctx context.Context) (string, error) {
	if f.failVerify {
		return "", errBackendDown
	}
	return f.username, nil
}
