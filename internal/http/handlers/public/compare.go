package public

import (
	"github.com/platansad/storefront/internal/http/response"
	"github.com/platansad/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

type compareResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
}

func (h *Handler) compareState() compareResponse {
	return compareResponse{
		Items: h.Compare.Items(),
		Count: h.Compare.Count(),
	}
}

// GetCompare returns the comparison list.
func (h *Handler) GetCompare(c *gin.Context) {
	response.Success(c, h.compareState())
}

// AddToCompare appends a product snapshot to the comparison list.
func (h *Handler) AddToCompare(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil || product.ID == "" {
		response.BadRequest(c, "invalid product")
		return
	}
	h.Compare.Add(c.Request.Context(), product)
	response.Success(c, h.compareState())
}

// RemoveFromCompare drops a product from the comparison list.
func (h *Handler) RemoveFromCompare(c *gin.Context) {
	h.Compare.Remove(c.Request.Context(), c.Param("productId"))
	response.Success(c, h.compareState())
}

// ClearCompare empties the comparison list.
func (h *Handler) ClearCompare(c *gin.Context) {
	h.Compare.Clear(c.Request.Context())
	response.Success(c, h.compareState())
}
