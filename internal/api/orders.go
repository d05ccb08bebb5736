package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/platansad/storefront/internal/models"
)

// OrdersAPI is the orders resource contract.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, order models.OrderCreate) (*models.Order, error)
	GetOrders(ctx context.Context, userID string) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	CreateQuickOrder(ctx context.Context, productID string, quantity int, name, phone, notes string) (*models.QuickOrder, error)
	GetQuickOrders(ctx context.Context) ([]models.QuickOrder, error)
}

// OrdersClient wraps the /api/orders and /api/quick-order resources.
type OrdersClient struct {
	client *Client
}

// NewOrdersClient creates an orders resource wrapper.
func NewOrdersClient(client *Client) *OrdersClient {
	return &OrdersClient{client: client}
}

// CreateOrder places a full checkout order.
func (c *OrdersClient) CreateOrder(ctx context.Context, order models.OrderCreate) (*models.Order, error) {
	var created models.Order
	if err := c.client.postJSON(ctx, "/api/orders", order, &created, false); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetOrders lists a user's orders.
func (c *OrdersClient) GetOrders(ctx context.Context, userID string) ([]models.Order, error) {
	query := url.Values{}
	query.Set("userId", userID)
	var orders []models.Order
	if err := c.client.getJSON(ctx, "/api/orders", query, &orders, false); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder loads one order for tracking.
func (c *OrdersClient) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.client.getJSON(ctx, fmt.Sprintf("/api/orders/%s", orderID), nil, &order, false); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateQuickOrder places a name-and-phone-only order for one product.
func (c *OrdersClient) CreateQuickOrder(ctx context.Context, productID string, quantity int, name, phone, notes string) (*models.QuickOrder, error) {
	body := map[string]interface{}{
		"productId":     productID,
		"quantity":      quantity,
		"customerName":  name,
		"customerPhone": phone,
		"notes":         notes,
	}
	var created models.QuickOrder
	if err := c.client.postJSON(ctx, "/api/quick-order", body, &created, false); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetQuickOrders lists the quick orders for the back office (admin token
// required).
func (c *OrdersClient) GetQuickOrders(ctx context.Context) ([]models.QuickOrder, error) {
	var orders []models.QuickOrder
	if err := c.client.getJSON(ctx, "/api/quick-orders", nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}
