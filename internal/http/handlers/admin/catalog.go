package admin

import (
	"github.com/platansad/storefront/internal/http/response"
	"github.com/platansad/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateProduct adds a catalog product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.BadRequest(c, "invalid product")
		return
	}
	created, err := h.CatalogAPI.CreateProduct(c.Request.Context(), product)
	if err != nil {
		h.respondProxyError(c, err, "product create failed")
		return
	}
	response.Success(c, created)
}

// UpdateProduct modifies a catalog product; only the sent fields change.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "invalid product")
		return
	}
	updated, err := h.CatalogAPI.UpdateProduct(c.Request.Context(), c.Param("productId"), fields)
	if err != nil {
		h.respondProxyError(c, err, "product update failed")
		return
	}
	response.Success(c, updated)
}

// DeleteProduct removes a catalog product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.CatalogAPI.DeleteProduct(c.Request.Context(), c.Param("productId")); err != nil {
		h.respondProxyError(c, err, "product delete failed")
		return
	}
	response.Success(c, nil)
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		response.BadRequest(c, "invalid category")
		return
	}
	created, err := h.CatalogAPI.CreateCategory(c.Request.Context(), category)
	if err != nil {
		h.respondProxyError(c, err, "category create failed")
		return
	}
	response.Success(c, created)
}

// UpdateCategory modifies a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "invalid category")
		return
	}
	updated, err := h.CatalogAPI.UpdateCategory(c.Request.Context(), c.Param("categoryId"), fields)
	if err != nil {
		h.respondProxyError(c, err, "category update failed")
		return
	}
	response.Success(c, updated)
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.CatalogAPI.DeleteCategory(c.Request.Context(), c.Param("categoryId")); err != nil {
		h.respondProxyError(c, err, "category delete failed")
		return
	}
	response.Success(c, nil)
}
