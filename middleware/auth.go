package middleware

import (
	"context"
	"net/http"
	"strings"

	accountRepo "lawroute/database/repository/account"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	ContextAccountID = "accountID"
	ContextRole      = "role"
)

// JWTAuthMiddleware authenticates the bearer token and sets the account ID
// and role on the request context. The token hash is checked against the
// auth cache first and against the account record on a cache miss, so a
// revoked or superseded session fails even though its JWT is still
// signature-valid.
func JWTAuthMiddleware(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or malformed Authorization header.")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, "Missing or malformed Authorization header.")
			return
		}

		accountID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + accountID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					abortUnauthorized(c, "Session has been revoked.")
					return
				}
				_ = authCache.Expire(ctx, cacheKey, utils.AuthSessionTTL).Err()
				setIdentity(c, accountID, role)
				return
			}
			if err != redis.Nil {
				zap.L().Warn("Auth cache lookup failed, falling back to DB",
					zap.Error(err))
			}
		}

		// Cache miss: the account record holds the authoritative hash.
		acc, err := accounts.GetByID(accountID)
		if err != nil || acc == nil {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}
		if acc.TokenHash == "" || acc.TokenHash != computedHash {
			abortUnauthorized(c, "Session has been revoked.")
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthSessionTTL).Err()
		}
		setIdentity(c, accountID, role)
	}
}

func setIdentity(c *gin.Context, accountID, role string) {
	c.Set(ContextAccountID, accountID)
	c.Set(ContextRole, role)
	c.Next()
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: message})
}
