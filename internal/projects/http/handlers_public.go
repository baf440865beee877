package http

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sourcecodehub/hub-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items := h.svc.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) like(c *gin.Context) {
	p, err := h.svc.Like(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// download counts the download, then either streams the code as a text
// attachment or redirects to the file URL.
func (h *Handler) download(c *gin.Context) {
	_, art, err := h.svc.Download(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}

	if art.Kind == domain.ArtifactLink {
		c.Redirect(http.StatusFound, art.URL)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.FileName}))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(art.Body))
}

func (h *Handler) raw(c *gin.Context) {
	content, err := h.svc.Raw(strings.TrimSpace(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrNotCode):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrNotCode.Error()})
	case errors.Is(err, domain.ErrInvalidProject):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
