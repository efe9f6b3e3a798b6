package container

import (
	"context"
	"fmt"

	"grimoire/browser/internal/client"
	"grimoire/browser/internal/config"
	"grimoire/browser/internal/service"
	"grimoire/browser/internal/state"
	"grimoire/browser/internal/web"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.GrimoireClient
	Service *service.Service
	History state.SearchHistory
	Server  *web.Server

	redis *redis.Client
}

// New creates a new container with all dependencies initialized. Redis is
// only contacted when search history is configured to live there.
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	grimoireClient := client.NewGrimoireClient(cfg.API)
	container.Client = grimoireClient
	container.Service = service.NewService(grimoireClient, cfg.Units.Limit)

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis, search history is shared")

		container.redis = rdb
		container.History = state.NewRedisSearchHistory(rdb, cfg.Redis.HistorySize)
	} else {
		container.History = state.NewMemorySearchHistory(cfg.Redis.HistorySize)
	}

	server, err := web.NewServer(cfg, container.Service, container.History)
	if err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to initialize web server: %w", err)
	}
	container.Server = server

	return container, nil
}

// Run serves the web front end until ctx is cancelled.
func (c *Container) Run(ctx context.Context) error {
	log.Infof("🔄 Using Grimoire API at %s", c.Config.API.BaseURL)
	return c.Server.Serve(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.redis == nil {
		return nil
	}

	log.Debug("Closing Redis connection...")
	return c.redis.Close()
}
