package routes

import (
	"github.com/gin-gonic/gin"

	authhttp "github.com/sourcecodehub/hub-backend/internal/auth/http"
	"github.com/sourcecodehub/hub-backend/internal/auth/middleware"
	authservice "github.com/sourcecodehub/hub-backend/internal/auth/service"
	chathttp "github.com/sourcecodehub/hub-backend/internal/chat/http"
	chatservice "github.com/sourcecodehub/hub-backend/internal/chat/service"
	projecthttp "github.com/sourcecodehub/hub-backend/internal/projects/http"
	projectservice "github.com/sourcecodehub/hub-backend/internal/projects/service"
	"github.com/sourcecodehub/hub-backend/internal/visitor"
)

type V1Deps struct {
	Auth     *authservice.AuthService
	Projects *projectservice.ProjectService
	Chat     *chatservice.ChatService
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(visitor.Middleware())

	authHandler := authhttp.New(dep.Auth)
	authHandler.RegisterPublic(api)

	projectHandler := projecthttp.New(dep.Projects)
	projectHandler.RegisterPublic(api.Group("/projects"))

	admin := api.Group("/admin", middleware.RequireAdmin(dep.Auth))
	authHandler.RegisterAdmin(admin)
	projectHandler.RegisterAdmin(admin.Group("/projects"))

	chathttp.New(dep.Chat).Register(api.Group("/chat"))
}
