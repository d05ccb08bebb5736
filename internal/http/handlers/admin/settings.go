package admin

import (
	"github.com/platansad/storefront/internal/http/response"
	"github.com/platansad/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// GetSiteSettings loads the settings through the admin surface.
func (h *Handler) GetSiteSettings(c *gin.Context) {
	settings, err := h.SettingsAPI.GetAdminSettings(c.Request.Context())
	if err != nil {
		h.respondProxyError(c, err, "settings unavailable")
		return
	}
	response.Success(c, settings)
}

// SaveSiteSettings replaces the whole settings object and refreshes the
// public cache so the storefront picks the change up immediately.
func (h *Handler) SaveSiteSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "invalid settings")
		return
	}
	if err := h.SettingsAPI.SaveAdminSettings(c.Request.Context(), settings); err != nil {
		h.respondProxyError(c, err, "settings save failed")
		return
	}
	h.Settings.Refresh(c.Request.Context())
	response.Success(c, h.Settings.Get())
}
