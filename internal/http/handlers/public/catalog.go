package public

import (
	"errors"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts lists catalog products, passing the query string through.
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.CatalogAPI.GetProducts(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.UpstreamError(c, "products unavailable")
		return
	}
	response.Success(c, products)
}

// GetProduct loads one product.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.CatalogAPI.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.UpstreamError(c, "product unavailable")
		return
	}
	response.Success(c, product)
}

// GetCategories lists catalog categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogAPI.GetCategories(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, "categories unavailable")
		return
	}
	response.Success(c, categories)
}
