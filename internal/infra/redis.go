package infra

import (
	"context"

	"github.com/go-redis/redis/v8"

	"menuboard/internal/config"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Draft.RedisAddr,
		Password: cfg.Draft.RedisPassword,
		DB:       cfg.Draft.RedisDB,
	})
}

func PingRedis(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
