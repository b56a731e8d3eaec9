package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// InitRedis connects when REDIS_HOST is set and leaves RedisClient nil otherwise.
func InitRedis(config Config) error {
	if config.RedisHost == "" {
		Logger.Warnw("REDIS_HOST not set, token revocation disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	RedisClient = client
	return nil
}
