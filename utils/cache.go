// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"veritek/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (training content cache).
	CacheClient *redis.Client
	// ChatStateClient is the dedicated client for chat session state.
	ChatStateClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitChatStateCache initializes the Redis client for chat session state
// (using DB from AppConfig for chat state).
func InitChatStateCache() {
	ChatStateClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatStateClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat State): %v", err)
	}
}

// GetChatStateClient returns the Redis client for chat session state.
func GetChatStateClient() *redis.Client {
	if ChatStateClient == nil {
		InitChatStateCache()
	}
	return ChatStateClient
}
