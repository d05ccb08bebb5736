package public

import (
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddToCartRequest adds a product to the cart.
type AddToCartRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Silent      bool   `json:"silent"`
}

// UpdateQuantityRequest changes one line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// RemoveFromCartRequest removes one line.
type RemoveFromCartRequest struct {
	ProductName string `json:"productName"`
	Silent      bool   `json:"silent"`
}

type cartResponse struct {
	Items interface{} `json:"items"`
	Total interface{} `json:"total"`
	Count int         `json:"count"`
}

func (h *Handler) cartState() cartResponse {
	return cartResponse{
		Items: h.Cart.Items(),
		Total: h.Cart.Total(),
		Count: h.Cart.Count(),
	}
}

// GetCart returns the current cart replica.
func (h *Handler) GetCart(c *gin.Context) {
	h.Cart.Fetch(c.Request.Context())
	response.Success(c, h.cartState())
}

// AddToCart puts a product into the cart.
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	h.Cart.Add(c.Request.Context(), req.ProductID, req.ProductName, req.Quantity, req.Silent)
	response.Success(c, h.cartState())
}

// UpdateCartItem changes a line's quantity.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID := c.Param("itemId")
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	h.Cart.UpdateQuantity(c.Request.Context(), itemID, req.Quantity)
	response.Success(c, h.cartState())
}

// RemoveFromCart deletes a line.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	itemID := c.Param("itemId")
	var req RemoveFromCartRequest
	_ = c.ShouldBindJSON(&req)
	h.Cart.Remove(c.Request.Context(), itemID, req.ProductName, req.Silent)
	response.Success(c, h.cartState())
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	h.Cart.Clear(c.Request.Context())
	response.Success(c, h.cartState())
}
