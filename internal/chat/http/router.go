package http

import "github.com/gin-gonic/gin"

// Register attaches chat routes; rg must already run the visitor middleware.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/:admin_id/messages", h.listMessages)
	rg.POST("/:admin_id/messages", h.postMessage)
	rg.GET("/:admin_id/stream", h.stream)
}
