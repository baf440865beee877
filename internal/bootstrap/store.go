package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sourcecodehub/hub-backend/config"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

type StoreOptions struct {
	ConnectTO time.Duration
	PingTO    time.Duration
}

// OpenStore opens the key-value backend selected by cfg.Store.Backend and
// checks that it answers.
func OpenStore(ctx context.Context, cfg *config.Config, opt StoreOptions, log *zap.Logger) (storage.KV, error) {
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	var (
		kv  storage.KV
		err error
	)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		kv = storage.NewMemoryStore()
	case config.BackendFile:
		kv, err = storage.OpenFileStore(cfg.Store.Path, log)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = storage.NewRedisStore(client, cfg.Redis.KeyPrefix)
	case config.BackendPostgres:
		cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
		defer cancel()
		kv, err = storage.OpenPostgresStore(cctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := kv.Ping(pctx); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("%s store ping: %w", cfg.Store.Backend, err)
	}

	log.Info("store opened", zap.String("backend", cfg.Store.Backend))
	return kv, nil
}
