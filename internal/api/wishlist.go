package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/platansad/storefront/internal/models"
)

// WishlistAPI is the wishlist resource contract.
type WishlistAPI interface {
	GetWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error)
	AddToWishlist(ctx context.Context, productID, userID string) (*models.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, itemID string) error
}

// WishlistClient wraps the /api/wishlist resource.
type WishlistClient struct {
	client *Client
}

// NewWishlistClient creates a wishlist resource wrapper.
func NewWishlistClient(client *Client) *WishlistClient {
	return &WishlistClient{client: client}
}

// GetWishlist loads the membership records for a user.
func (c *WishlistClient) GetWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	query := url.Values{}
	query.Set("userId", userID)
	var items []models.WishlistItem
	if err := c.client.getJSON(ctx, "/api/wishlist", query, &items, false); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist creates a membership record.
func (c *WishlistClient) AddToWishlist(ctx context.Context, productID, userID string) (*models.WishlistItem, error) {
	body := map[string]interface{}{
		"productId": productID,
		"userId":    userID,
	}
	var item models.WishlistItem
	if err := c.client.postJSON(ctx, "/api/wishlist/add", body, &item, false); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromWishlist deletes a membership record by its own id (not the
// product id; callers resolve the record first).
func (c *WishlistClient) RemoveFromWishlist(ctx context.Context, itemID string) error {
	return c.client.deleteJSON(ctx, fmt.Sprintf("/api/wishlist/%s", itemID), nil, false)
}
