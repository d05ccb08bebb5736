package public

import (
	"time"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/cache"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/http/response"
	"github.com/platansad/storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

// GetPaymentStatus returns the payment state for an order. The worker's
// cached result is served when present; otherwise the backend is asked
// directly and the answer cached for the next poll.
func (h *Handler) GetPaymentStatus(c *gin.Context) {
	orderID := c.Param("orderId")
	ctx := c.Request.Context()
	cacheKey := constants.CacheKeyLiqPayStatus + orderID

	var cached api.LiqPayStatus
	hit, err := cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warnw("payment_status_cache_read_failed", "order_id", orderID, "error", err)
	}
	if hit {
		response.Success(c, cached)
		return
	}

	status, err := h.LiqPayAPI.GetStatus(ctx, orderID)
	if err != nil {
		response.UpstreamError(c, "payment status unavailable")
		return
	}
	if err := cache.SetJSON(ctx, cacheKey, status, 24*time.Hour); err != nil {
		logger.Warnw("payment_status_cache_write_failed", "order_id", orderID, "error", err)
	}
	response.Success(c, status)
}
