package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sourcecodehub/hub-backend/internal/auth"
	"github.com/sourcecodehub/hub-backend/internal/projects/domain"
)

func (h *Handler) listMine(c *gin.Context) {
	items := h.svc.ListByAuthor(auth.AdminID(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), auth.AdminID(c), domain.NewProjectInput{
		Name:       req.Name,
		Language:   req.Language,
		Type:       domain.Type(req.Type),
		Content:    req.Content,
		PreviewURL: req.PreviewURL,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.svc.Delete(c.Request.Context(), auth.AdminID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
