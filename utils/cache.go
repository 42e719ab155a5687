// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"azura/config"

	"github.com/go-redis/redis/v8"
)

var (
	// ChatCtxCacheClient holds per-user conversation context between messages.
	ChatCtxCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitChatCtxCache initializes the Redis client for chat context caching.
func InitChatCtxCache() {
	ChatCtxCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatCtxDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatCtxCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Context Cache): %v", err)
	}
}

// GetChatCtxCacheClient returns the chat context cache client.
func GetChatCtxCacheClient() *redis.Client {
	if ChatCtxCacheClient == nil {
		InitChatCtxCache()
	}
	return ChatCtxCacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
