package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/platansad/storefront/internal/models"
)

// CatalogAPI is the products/categories resource contract.
type CatalogAPI interface {
	GetProducts(ctx context.Context, params url.Values) ([]models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
}

// CatalogClient wraps the /api/products and /api/categories resources.
// Mutations go through the admin-authenticated paths.
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a catalog resource wrapper.
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// GetProducts lists catalog products; params pass through (category, search,
// sort, limit) untouched.
func (c *CatalogClient) GetProducts(ctx context.Context, params url.Values) ([]models.Product, error) {
	var products []models.Product
	if err := c.client.getJSON(ctx, "/api/products", params, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct loads a single product.
func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.client.getJSON(ctx, fmt.Sprintf("/api/products/%s", productID), nil, &product, false); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetCategories lists catalog categories.
func (c *CatalogClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.client.getJSON(ctx, "/api/categories", nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateProduct adds a catalog product (admin token required).
func (c *CatalogClient) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.client.postJSON(ctx, "/api/products", product, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct modifies a catalog product (admin token required).
func (c *CatalogClient) UpdateProduct(ctx context.Context, productID string, fields map[string]interface{}) (*models.Product, error) {
	var updated models.Product
	if err := c.client.putJSON(ctx, fmt.Sprintf("/api/products/%s", productID), fields, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a catalog product (admin token required).
func (c *CatalogClient) DeleteProduct(ctx context.Context, productID string) error {
	return c.client.deleteJSON(ctx, fmt.Sprintf("/api/products/%s", productID), nil, true)
}

// CreateCategory adds a category (admin token required).
func (c *CatalogClient) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	var created models.Category
	if err := c.client.postJSON(ctx, "/api/admin/categories", category, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory modifies a category (admin token required).
func (c *CatalogClient) UpdateCategory(ctx context.Context, categoryID string, fields map[string]interface{}) (*models.Category, error) {
	var updated models.Category
	if err := c.client.putJSON(ctx, fmt.Sprintf("/api/admin/categories/%s", categoryID), fields, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes a category (admin token required).
func (c *CatalogClient) DeleteCategory(ctx context.Context, categoryID string) error {
	return c.client.deleteJSON(ctx, fmt.Sprintf("/api/admin/categories/%s", categoryID), nil, true)
}
