package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis for dashboard caching. If the ping
// fails the function returns nil and callers degrade gracefully by
// reading straight from the database.
func NewRedisClient(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable at %s, caching disabled: %v", cfg.Redis.Addr, err)
		return nil
	}

	log.Printf("✅ Redis connected [%s]", cfg.Redis.Addr)
	return client
}
