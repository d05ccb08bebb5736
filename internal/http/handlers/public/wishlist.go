package public

import (
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

type wishlistResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
}

func (h *Handler) wishlistState() wishlistResponse {
	return wishlistResponse{
		Items: h.Wishlist.Items(),
		Count: h.Wishlist.Count(),
	}
}

// GetWishlist returns the current wishlist replica.
func (h *Handler) GetWishlist(c *gin.Context) {
	h.Wishlist.Fetch(c.Request.Context())
	response.Success(c, h.wishlistState())
}

// ToggleWishlist flips membership for a product.
func (h *Handler) ToggleWishlist(c *gin.Context) {
	productID := c.Param("productId")
	h.Wishlist.Toggle(c.Request.Context(), productID)
	response.Success(c, gin.H{
		"inWishlist": h.Wishlist.Contains(productID),
		"count":      h.Wishlist.Count(),
	})
}

// AddToWishlist creates a membership record.
func (h *Handler) AddToWishlist(c *gin.Context) {
	h.Wishlist.Add(c.Request.Context(), c.Param("productId"))
	response.Success(c, h.wishlistState())
}

// RemoveFromWishlist deletes a membership record by product id.
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	h.Wishlist.Remove(c.Request.Context(), c.Param("productId"))
	response.Success(c, h.wishlistState())
}
