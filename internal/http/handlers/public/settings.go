package public

import (
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the cached site settings.
func (h *Handler) GetSettings(c *gin.Context) {
	response.Success(c, h.Settings.Get())
}

// RefreshSettings reloads the settings from the backend.
func (h *Handler) RefreshSettings(c *gin.Context) {
	h.Settings.Refresh(c.Request.Context())
	response.Success(c, h.Settings.Get())
}
