package redis

import (
	"context"
	"fmt"
	"time"

	"community-portal-backend/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// Config holds the connection settings for the portal's single redis
// instance, which backs both the completeness cache and the notification
// outbox stream.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Client wraps the go-redis client so callers depend on this package, not
// on the driver directly.
type Client struct {
	*redis.Client
}

// Open connects and pings to validate the settings before anything is
// cached or enqueued.
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("empty redis host")
	}

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().Str("host", cfg.Host).Int("db", cfg.DB).Msg("Redis client initialized")
	return &Client{Client: c}, nil
}
