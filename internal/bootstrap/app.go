package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sourcecodehub/hub-backend/config"
	"github.com/sourcecodehub/hub-backend/internal/api/http/routes"
	authdomain "github.com/sourcecodehub/hub-backend/internal/auth/domain"
	authrepo "github.com/sourcecodehub/hub-backend/internal/auth/repository"
	authservice "github.com/sourcecodehub/hub-backend/internal/auth/service"
	chatservice "github.com/sourcecodehub/hub-backend/internal/chat/service"
	projectrepo "github.com/sourcecodehub/hub-backend/internal/projects/repository"
	projectservice "github.com/sourcecodehub/hub-backend/internal/projects/service"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

// App holds the long-lived services of one process.
type App struct {
	Store    storage.KV
	Auth     *authservice.AuthService
	Projects *projectservice.ProjectService
	Chat     *chatservice.ChatService
	Router   *gin.Engine

	log *zap.Logger
}

// NewApp opens the store, loads the catalog and admins, and assembles the router.
func NewApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	kv, err := OpenStore(ctx, cfg, StoreOptions{}, log)
	if err != nil {
		return nil, err
	}

	app, err := newApp(ctx, cfg, kv, log)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.Config, kv storage.KV, log *zap.Logger) (*App, error) {
	seed := authdomain.SeedAdmins()
	if cfg.Admins.SeedFile != "" {
		fromFile, err := authdomain.LoadSeedFile(cfg.Admins.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = fromFile
		log.Info("admin seed loaded", zap.String("file", cfg.Admins.SeedFile), zap.Int("admins", len(seed)))
	}

	var admins *authrepo.AdminRepository
	if cfg.Admins.Persist {
		var err error
		admins, err = authrepo.NewPersistentAdminRepository(ctx, kv, seed, log.Named("admins"))
		if err != nil {
			return nil, err
		}
	} else {
		admins = authrepo.NewAdminRepository(seed)
	}

	auth := authservice.NewAuthService(admins, authrepo.NewSessionRepository(kv), log.Named("auth"))

	projects := projectservice.NewProjectService(projectrepo.NewProjectStore(kv, log.Named("store")), log.Named("projects"))
	if err := projects.Init(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	chat := chatservice.NewChatService(auth, cfg.Chat.ReplyDelay, log.Named("chat"))

	router := BuildRouter(RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Store:          kv,
		Log:            log.Named("http"),
		V1: routes.V1Deps{
			Auth:     auth,
			Projects: projects,
			Chat:     chat,
		},
	})

	return &App{
		Store:    kv,
		Auth:     auth,
		Projects: projects,
		Chat:     chat,
		Router:   router,
		log:      log,
	}, nil
}

// Close stops pending chat replies and releases the store.
func (a *App) Close() error {
	a.Chat.Close()
	if err := a.Store.Close(); err != nil {
		a.log.Error("failed to close store", zap.Error(err))
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
