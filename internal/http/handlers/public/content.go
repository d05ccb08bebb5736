package public

import (
	"errors"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPages lists the editable content pages.
func (h *Handler) GetPages(c *gin.Context) {
	pages, err := h.ContentAPI.GetPages(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, "pages unavailable")
		return
	}
	response.Success(c, pages)
}

// GetPage loads one content page by key.
func (h *Handler) GetPage(c *gin.Context) {
	page, err := h.ContentAPI.GetPage(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			response.NotFound(c, "page not found")
			return
		}
		response.UpstreamError(c, "page unavailable")
		return
	}
	response.Success(c, page)
}

// GetHero lists the homepage hero slides.
func (h *Handler) GetHero(c *gin.Context) {
	slides, err := h.ContentAPI.GetHero(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, "hero unavailable")
		return
	}
	response.Success(c, slides)
}

// GetPosts lists published blog articles.
func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.ContentAPI.GetPosts(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, "posts unavailable")
		return
	}
	response.Success(c, posts)
}
