package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/sourcecodehub/hub-backend/internal/api/http"
	"github.com/sourcecodehub/hub-backend/internal/api/http/middleware"
	"github.com/sourcecodehub/hub-backend/internal/api/http/routes"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Store          storage.KV
	Log            *zap.Logger
	V1             routes.V1Deps
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, dep.V1)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-Id")
	cfg.ExposeHeaders = []string{"X-Request-Id", "Content-Disposition"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	// cookies only travel to explicitly listed origins
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
