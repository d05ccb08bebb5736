package admin

import (
	"errors"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// respondProxyError maps backend proxy failures onto the envelope. A 401
// from the backend also drops the local session.
func (h *Handler) respondProxyError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		h.AdminAuth.Logout(c.Request.Context())
		response.Unauthorized(c, "session expired")
	case errors.Is(err, api.ErrNotFound):
		response.NotFound(c, msg)
	default:
		response.UpstreamError(c, msg)
	}
}
