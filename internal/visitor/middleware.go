package visitor

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxVisitor = "visitor"

	// CookieName matches the storage key used by the CLI.
	CookieName = Key

	cookieMaxAge = 365 * 24 * 60 * 60
)

// Middleware makes sure every request carries a visitor label, minting one
// into a long-lived cookie when the browser has none.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		label, err := c.Cookie(CookieName)
		if err != nil || !Valid(label) {
			label = NewLabel()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, label, cookieMaxAge, "/", "", false, true)
		}
		c.Set(CtxVisitor, label)
		c.Next()
	}
}

// Label returns the visitor label set by Middleware.
func Label(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxVisitor))
}
