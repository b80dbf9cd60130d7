// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"windward/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the client used for the weather snapshot cache.
	CacheClient *redis.Client
	// RateCacheClient is the dedicated client for rate-limit counters.
	RateCacheClient *redis.Client
)

// InitCache initializes the Redis client backing the weather snapshot cache.
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

// GetCacheClient returns the weather cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitRateCache initializes the Redis client for rate-limit counters.
func InitRateCache() {
	RateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RateCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Rate): %v", err)
	}
}

// GetRateCacheClient returns the Redis client for rate-limit counters.
func GetRateCacheClient() *redis.Client {
	if RateCacheClient == nil {
		InitRateCache()
	}
	return RateCacheClient
}
