package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/platansad/storefront/internal/models"
)

// CartAPI is the cart resource contract; stores depend on this, not on the
// concrete client, so tests can substitute a mock.
type CartAPI interface {
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)
	AddToCart(ctx context.Context, productID string, quantity int, userID string) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}

// CartClient wraps the /api/cart resource.
type CartClient struct {
	client *Client
}

// NewCartClient creates a cart resource wrapper.
func NewCartClient(client *Client) *CartClient {
	return &CartClient{client: client}
}

// GetCart loads the item list for a user.
func (c *CartClient) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	query := url.Values{}
	query.Set("userId", userID)
	var items []models.CartItem
	if err := c.client.getJSON(ctx, "/api/cart", query, &items, false); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart adds a product to the user's cart.
func (c *CartClient) AddToCart(ctx context.Context, productID string, quantity int, userID string) (*models.CartItem, error) {
	body := map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
		"userId":    userID,
	}
	var item models.CartItem
	if err := c.client.postJSON(ctx, "/api/cart/add", body, &item, false); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem changes an item's quantity.
func (c *CartClient) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	body := map[string]interface{}{"quantity": quantity}
	var item models.CartItem
	if err := c.client.putJSON(ctx, fmt.Sprintf("/api/cart/%s", itemID), body, &item, false); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart deletes one cart item by its own id.
func (c *CartClient) RemoveFromCart(ctx context.Context, itemID string) error {
	return c.client.deleteJSON(ctx, fmt.Sprintf("/api/cart/%s", itemID), nil, false)
}

// ClearCart removes every item of the user's cart.
func (c *CartClient) ClearCart(ctx context.Context, userID string) error {
	return c.client.deleteJSON(ctx, fmt.Sprintf("/api/cart/clear/%s", userID), nil, false)
}
