package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "gatherly/database/repository/user"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the bearer token, resolves it to a user, and
// sets "userID" in the request context. The token hash is checked against the
// auth cache first and the user collection second, so a revoked token stops
// working even before its JWT expiry.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Fast path: auth cache.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		userID, err := utils.GetAuthCacheClient().Get(ctx, "authToken:"+computedHash).Result()
		cancel()
		if err == nil && userID != "" {
			c.Set("userID", userID)
			c.Next()
			return
		}
		if err != nil && err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed: " + err.Error())
		}

		// Slow path: user collection.
		u, err := repo.GetByTokenHash(computedHash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		c.Set("userID", u.ID)
		c.Next()
	}
}
