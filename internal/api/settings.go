package api

import (
	"context"

	"github.com/platansad/storefront/internal/models"
)

// SettingsAPI is the site settings resource contract.
type SettingsAPI interface {
	GetPublicSettings(ctx context.Context) (*models.Settings, error)
}

// SettingsClient wraps the /api/settings resources.
type SettingsClient struct {
	client *Client
}

// NewSettingsClient creates a settings resource wrapper.
func NewSettingsClient(client *Client) *SettingsClient {
	return &SettingsClient{client: client}
}

// GetPublicSettings loads the publicly readable site configuration.
func (c *SettingsClient) GetPublicSettings(ctx context.Context) (*models.Settings, error) {
	var envelope models.SettingsEnvelope
	if err := c.client.getJSON(ctx, "/api/settings", nil, &envelope, false); err != nil {
		return nil, err
	}
	return &envelope.SettingsData, nil
}

// GetAdminSettings loads the settings through the admin surface.
func (c *SettingsClient) GetAdminSettings(ctx context.Context) (*models.Settings, error) {
	var envelope models.SettingsEnvelope
	if err := c.client.getJSON(ctx, "/api/admin/site-settings", nil, &envelope, true); err != nil {
		return nil, err
	}
	return &envelope.SettingsData, nil
}

// SaveAdminSettings replaces the whole settings object.
func (c *SettingsClient) SaveAdminSettings(ctx context.Context, settings models.Settings) error {
	body := models.SettingsEnvelope{SettingsData: settings}
	return c.client.postJSON(ctx, "/api/admin/site-settings", body, nil, true)
}
