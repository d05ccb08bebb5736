package api

import (
	"context"
	"fmt"

	"github.com/platansad/storefront/internal/models"
)

// ContentClient wraps the CMS pages and blog resources.
type ContentClient struct {
	client *Client
}

// NewContentClient creates a content resource wrapper.
func NewContentClient(client *Client) *ContentClient {
	return &ContentClient{client: client}
}

// GetPages lists the editable content pages.
func (c *ContentClient) GetPages(ctx context.Context) ([]models.CMSPage, error) {
	var pages []models.CMSPage
	if err := c.client.getJSON(ctx, "/api/cms/pages", nil, &pages, false); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPage loads one content page by key.
func (c *ContentClient) GetPage(ctx context.Context, key string) (*models.CMSPage, error) {
	var page models.CMSPage
	if err := c.client.getJSON(ctx, fmt.Sprintf("/api/cms/pages/%s", key), nil, &page, false); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage replaces a content page (admin token required).
func (c *ContentClient) UpdatePage(ctx context.Context, key string, page models.CMSPage) (*models.CMSPage, error) {
	var updated models.CMSPage
	if err := c.client.putJSON(ctx, fmt.Sprintf("/api/cms/pages/%s", key), page, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetHero lists the homepage hero slides.
func (c *ContentClient) GetHero(ctx context.Context) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	if err := c.client.getJSON(ctx, "/api/cms/hero", nil, &slides, false); err != nil {
		return nil, err
	}
	return slides, nil
}

// GetPosts lists published blog articles.
func (c *ContentClient) GetPosts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := c.client.getJSON(ctx, "/api/blog/posts", nil, &posts, false); err != nil {
		return nil, err
	}
	return posts, nil
}
