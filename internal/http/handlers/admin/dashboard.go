package admin

import (
	"strconv"

	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStats loads the dashboard summary.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.AdminAPI.GetStats(c.Request.Context())
	if err != nil {
		h.respondProxyError(c, err, "stats unavailable")
		return
	}
	response.Success(c, stats)
}

// GetRevenueChart loads revenue points for the requested window.
func (h *Handler) GetRevenueChart(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}
	points, err := h.AdminAPI.GetRevenueChart(c.Request.Context(), days)
	if err != nil {
		h.respondProxyError(c, err, "revenue chart unavailable")
		return
	}
	response.Success(c, points)
}

// GetTopProducts loads the best-sellers table.
func (h *Handler) GetTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}
	products, err := h.AdminAPI.GetTopProducts(c.Request.Context(), limit)
	if err != nil {
		h.respondProxyError(c, err, "top products unavailable")
		return
	}
	response.Success(c, products)
}
