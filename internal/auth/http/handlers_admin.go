package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourcecodehub/hub-backend/internal/auth"
	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
)

// Login checks the credentials and opens a session. The token is returned in
// the body and also set as the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to open session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "admin": admin.Public()})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), auth.SessionToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to close session"})
		return
	}

	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the current admin as stored now, so profile edits show up
// without logging in again.
func (h *Handler) Me(c *gin.Context) {
	admin, err := h.authService.GetProfile(auth.AdminID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": domain.ErrUnauthenticated.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin.Public()})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	admin, err := h.authService.UpdateProfile(c.Request.Context(), auth.AdminID(c), domain.ProfileUpdate{
		Name:     req.Name,
		Quote:    req.Quote,
		Hashtags: req.Hashtags,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin.Public()})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), auth.AdminID(c), req.OldPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Password updated successfully!"})
}

// ListAdmins serves the team page.
func (h *Handler) ListAdmins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "admins": h.authService.Profiles()})
}

func (h *Handler) GetAdmin(c *gin.Context) {
	admin, err := h.authService.GetProfile(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin.Public()})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrPasswordMismatch.Error()})
	case errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": domain.ErrAdminNotFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
