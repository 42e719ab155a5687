package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"azura/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware resolves the calling user from the bearer token and sets
// "userID" in the gin context. Valid tokens are cached by hash so repeat
// requests skip signature verification.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := "auth:" + computedHash

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cachedUserID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedUserID != "" {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", cachedUserID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to token validation.", err)
			}
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, userID, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
