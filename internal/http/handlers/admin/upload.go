package admin

import (
	"github.com/platansad/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadImage forwards a media file to the backend and returns its URL.
func (h *Handler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file missing")
		return
	}
	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "file unreadable")
		return
	}
	defer file.Close()

	uploaded, err := h.AdminAPI.UploadImage(c.Request.Context(), header.Filename, file)
	if err != nil {
		h.respondProxyError(c, err, "upload failed")
		return
	}
	response.Success(c, uploaded)
}
