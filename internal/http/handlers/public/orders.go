package public

import (
	"errors"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// QuickOrderRequest is the one-tap order form.
type QuickOrderRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Notes         string `json:"notes"`
}

// GetOrders lists the guest's orders.
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.OrdersAPI.GetOrders(c.Request.Context(), constants.GuestUserID)
	if err != nil {
		response.UpstreamError(c, "orders unavailable")
		return
	}
	response.Success(c, orders)
}

// GetOrder loads one order for tracking.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrdersAPI.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.UpstreamError(c, "order unavailable")
		return
	}
	response.Success(c, order)
}

// CreateQuickOrder places a name-and-phone order for one product.
func (h *Handler) CreateQuickOrder(c *gin.Context) {
	var req QuickOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	order, err := h.OrdersAPI.CreateQuickOrder(c.Request.Context(), req.ProductID, req.Quantity, req.CustomerName, req.CustomerPhone, req.Notes)
	if err != nil {
		h.Feed.Error("Помилка оформлення замовлення")
		response.UpstreamError(c, "quick order failed")
		return
	}
	h.Feed.Success("Замовлення успішно оформлено!")
	response.Success(c, order)
}
