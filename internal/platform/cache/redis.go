package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient connects to redis, retrying while the server starts up.
func NewRedisClient(ctx context.Context, cfg Config, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		logger.Info("connecting to redis", zap.Int("attempt", i), zap.Int("max_attempts", maxRetries))

		if err = rdb.Ping(ctx).Err(); err == nil {
			logger.Info("redis connected", zap.String("addr", rdb.Options().Addr))
			return rdb, nil
		}

		logger.Warn("redis not ready yet, waiting 2 seconds", zap.Error(err))
		select {
		case <-ctx.Done():
			rdb.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	rdb.Close()
	return nil, fmt.Errorf("connect redis: %w", err)
}
