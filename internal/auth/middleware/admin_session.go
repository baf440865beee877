package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sourcecodehub/hub-backend/internal/auth"
	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/auth/service"
)

// RequireAdmin resolves the session token and stores the admin id in the
// context. Requests without a live session are rejected with 401.
func RequireAdmin(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing session token"})
			return
		}

		admin, err := svc.Current(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid session"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}

		c.Set(auth.CtxAdminID, admin.ID)
		c.Set(auth.CtxSessionToken, token)
		c.Next()
	}
}

// extractToken prefers the Bearer header and falls back to the session cookie
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
		return cookie
	}
	return ""
}
