package admin

import (
	"errors"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a session.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := h.AdminAuth.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		response.UpstreamError(c, "login failed")
		return
	}
	response.Success(c, gin.H{
		"username": h.AdminAuth.Username(),
	})
}

// Logout drops the session.
func (h *Handler) Logout(c *gin.Context) {
	h.AdminAuth.Logout(c.Request.Context())
	response.Success(c, nil)
}

// Session reports the current session after re-verifying it.
func (h *Handler) Session(c *gin.Context) {
	if err := h.AdminAuth.Verify(c.Request.Context()); err != nil {
		response.Unauthorized(c, "session invalid")
		return
	}
	response.Success(c, gin.H{
		"username":      h.AdminAuth.Username(),
		"authenticated": true,
	})
}
