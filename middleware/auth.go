package middleware

import (
	"strings"

	"github.com/VoyageGenie/voyage-backend/config"
	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/internal/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer session token and stores the
// authenticated username under UserIDKey.
func AuthMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	secret := []byte(cfg.JwtSecretKey)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			_ = c.Error(errors.Unauthorized("missing_token", "Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			_ = c.Error(errors.Unauthorized("invalid_token", "Authorization header must be a bearer token"))
			c.Abort()
			return
		}

		username, err := auth.ValidateToken(secret, parts[1])
		if err != nil {
			_ = c.Error(errors.Unauthorized("invalid_token", "Invalid or expired session token"))
			c.Abort()
			return
		}

		c.Set(UserIDKey, username)
		c.Next()
	}
}

// GetUserID extracts the authenticated username from the gin context.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
