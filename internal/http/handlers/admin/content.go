package admin

import (
	"github.com/platansad/storefront/internal/http/response"
	"github.com/platansad/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// UpdatePage replaces a content page.
func (h *Handler) UpdatePage(c *gin.Context) {
	var page models.CMSPage
	if err := c.ShouldBindJSON(&page); err != nil {
		response.BadRequest(c, "invalid page")
		return
	}
	updated, err := h.ContentAPI.UpdatePage(c.Request.Context(), c.Param("key"), page)
	if err != nil {
		h.respondProxyError(c, err, "page update failed")
		return
	}
	response.Success(c, updated)
}
