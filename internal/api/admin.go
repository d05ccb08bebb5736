package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/platansad/storefront/internal/models"
)

// AdminAPI is the admin auth contract the session store depends on.
type AdminAPI interface {
	Login(ctx context.Context, username, password string) (*models.AdminToken, error)
	Verify(ctx context.Context) (string, error)
}

// AdminClient wraps the /api/admin back-office resources. Every call except
// Login carries the bearer token from the client's token source.
type AdminClient struct {
	client *Client
}

// NewAdminClient creates an admin resource wrapper.
func NewAdminClient(client *Client) *AdminClient {
	return &AdminClient{client: client}
}

// Login exchanges credentials for a bearer token.
func (c *AdminClient) Login(ctx context.Context, username, password string) (*models.AdminToken, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var token models.AdminToken
	if err := c.client.postJSON(ctx, "/api/admin/login", body, &token, false); err != nil {
		return nil, err
	}
	return &token, nil
}

// Verify confirms the held token is still accepted and returns the admin
// username.
func (c *AdminClient) Verify(ctx context.Context) (string, error) {
	var resp struct {
		Username string `json:"username"`
	}
	if err := c.client.getJSON(ctx, "/api/admin/verify", nil, &resp, true); err != nil {
		return "", err
	}
	return resp.Username, nil
}

// GetStats loads the dashboard summary.
func (c *AdminClient) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.client.getJSON(ctx, "/api/admin/stats", nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetRevenueChart loads revenue points for the last N days.
func (c *AdminClient) GetRevenueChart(ctx context.Context, days int) ([]models.RevenueData, error) {
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))
	var points []models.RevenueData
	if err := c.client.getJSON(ctx, "/api/admin/revenue-chart", query, &points, true); err != nil {
		return nil, err
	}
	return points, nil
}

// GetTopProducts loads the best-sellers table.
func (c *AdminClient) GetTopProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	var products []models.TopProduct
	if err := c.client.getJSON(ctx, "/api/admin/top-products", query, &products, true); err != nil {
		return nil, err
	}
	return products, nil
}

// GetOrders lists all orders for the back office.
func (c *AdminClient) GetOrders(ctx context.Context, params url.Values) ([]models.Order, error) {
	var orders []models.Order
	if err := c.client.getJSON(ctx, "/api/admin/orders", params, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderStats counts orders by status.
func (c *AdminClient) GetOrderStats(ctx context.Context) (*models.OrderStats, error) {
	var stats models.OrderStats
	if err := c.client.getJSON(ctx, "/api/admin/orders/stats", nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}

// UpdateOrderStatus moves an order through its lifecycle.
func (c *AdminClient) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	body := map[string]string{"status": status}
	var order models.Order
	if err := c.client.putJSON(ctx, fmt.Sprintf("/api/admin/orders/%s/status", orderID), body, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

// UploadImage pushes a media file and returns its relative URL.
func (c *AdminClient) UploadImage(ctx context.Context, filename string, file io.Reader) (*models.ImageUpload, error) {
	var uploaded models.ImageUpload
	if err := c.client.postMultipart(ctx, "/api/admin/upload-image", "file", filename, file, &uploaded); err != nil {
		return nil, err
	}
	return &uploaded, nil
}
