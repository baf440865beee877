package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminID      = "admin_id"
	CtxSessionToken = "session_token"

	// SessionCookie carries the session token for browser clients.
	SessionCookie = "hub_session"
)

// AdminID extracts the authenticated admin id from the Gin context.
// This is set by middleware.RequireAdmin
func AdminID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminID))
}

// SessionToken returns the token the current request authenticated with.
func SessionToken(c *gin.Context) string {
	return c.GetString(CtxSessionToken)
}
