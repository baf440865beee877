package http

import "github.com/gin-gonic/gin"

// RegisterPublic mounts the routes that need no session.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/admins", h.ListAdmins)
	rg.GET("/admins/:id", h.GetAdmin)
	rg.POST("/admin/login", h.Login)
}

// RegisterAdmin mounts the console routes; rg must already run RequireAdmin.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.Me)
	rg.PUT("/profile", h.UpdateProfile)
	rg.PUT("/password", h.ChangePassword)
}
