package admin

import (
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest moves an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetOrders lists all orders for the back office.
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.AdminAPI.GetOrders(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.respondProxyError(c, err, "orders unavailable")
		return
	}
	response.Success(c, orders)
}

// GetQuickOrders lists the one-product quick orders.
func (h *Handler) GetQuickOrders(c *gin.Context) {
	orders, err := h.OrdersAPI.GetQuickOrders(c.Request.Context())
	if err != nil {
		h.respondProxyError(c, err, "quick orders unavailable")
		return
	}
	response.Success(c, orders)
}

// GetOrderStats counts orders by status.
func (h *Handler) GetOrderStats(c *gin.Context) {
	stats, err := h.AdminAPI.GetOrderStats(c.Request.Context())
	if err != nil {
		h.respondProxyError(c, err, "order stats unavailable")
		return
	}
	response.Success(c, stats)
}

// UpdateOrderStatus changes one order's status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	order, err := h.AdminAPI.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		h.respondProxyError(c, err, "order status update failed")
		return
	}
	response.Success(c, order)
}
