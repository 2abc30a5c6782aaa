// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"podio/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient holds per-session flow state.
	SessionClient *redis.Client
	// CacheClient is the generic cache client (event lookups).
	CacheClient *redis.Client
)

// InitSessionStore initializes the Redis client that backs flow sessions.
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for flow sessions.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}

// InitCache initializes the generic Redis cache client.
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
