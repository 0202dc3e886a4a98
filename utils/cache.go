// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"voyago/config"

	"github.com/go-redis/redis/v8"
)

// StoreClient is the Redis client backing the plan/session store when
// STORE_BACKEND is "redis".
var StoreClient *redis.Client

// InitStoreClient connects the Redis store client and verifies the link.
func InitStoreClient() {
	StoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StoreClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (store): %v", err)
	}
}

// GetStoreClient returns the Redis store client, connecting lazily.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		InitStoreClient()
	}
	return StoreClient
}
