package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the catalog and detail routes. Download answers
// both GET, for plain links and the file redirect, and POST, for clients that
// must not count a prefetch.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("/:id/like", h.like)
	rg.GET("/:id/download", h.download)
	rg.POST("/:id/download", h.download)
	rg.GET("/:id/raw", h.raw)
}

// RegisterAdmin attaches the console routes; rg must already run RequireAdmin.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.listMine)
	rg.POST("", h.create)
	rg.DELETE("/:id", h.delete)
}
