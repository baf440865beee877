package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcecodehub/hub-backend/internal/auth"
	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/auth/repository"
	"github.com/sourcecodehub/hub-backend/internal/auth/service"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService(
		repository.NewAdminRepository(domain.SeedAdmins()),
		repository.NewSessionRepository(storage.NewMemoryStore()),
		nil,
	)
	token, _, err := svc.Login(context.Background(), "Silverhold", "Rian")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireAdmin(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": auth.AdminID(c), "token": auth.SessionToken(c)})
	})
	return r, token
}

func TestRequireAdmin(t *testing.T) {
	r, token := setupRouter(t)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"bearer token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token}) }, http.StatusOK},
		{"unknown token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"malformed header", func(req *http.Request) { req.Header.Set("Authorization", token) }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"id":"admin-1"`)
			}
		})
	}
}
