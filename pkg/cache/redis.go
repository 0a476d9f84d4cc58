package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"cinema-api/pkg/utils"
)

// NewRedisClient connects to Redis using the app config. Returns nil when no
// address is configured or the server is unreachable; callers degrade by
// disabling response caching.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
