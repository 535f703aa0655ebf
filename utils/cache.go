package utils

import (
	"context"
	"fmt"
	"time"

	"statutesync/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to the configured Redis server on the given logical DB and pings it.
func NewRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis db %d: %w", db, err)
	}
	return client, nil
}
