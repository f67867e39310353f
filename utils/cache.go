// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"lawroute/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth-session keys in redis.
const AuthCachePrefix = "authsession:"

// AuthSessionTTL is how long a cached session hash lives without use.
const AuthSessionTTL = time.Hour

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

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

// CacheAuthSession stores the token hash for an account so the auth
// middleware can validate without a DB round trip and revocation takes
// effect immediately.
func CacheAuthSession(ctx context.Context, accountID, tokenHash string) error {
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+accountID, tokenHash, AuthSessionTTL).Err()
}

// RevokeAuthSession drops the cached session for an account.
func RevokeAuthSession(ctx context.Context, accountID string) error {
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+accountID).Err()
}
