package public

import (
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// DrainNotifications returns and clears the pending user notifications.
func (h *Handler) DrainNotifications(c *gin.Context) {
	response.Success(c, h.Feed.Drain())
}
