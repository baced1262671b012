package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/in-nis/bogyul-back/internal/config"
)

// EmailKey is the gin context key holding the authenticated teacher.
const EmailKey = "email"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			return
		}

		email, isRefresh, err := parseToken([]byte(cfg.JWT_SECRET), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if isRefresh {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Refresh token cannot be used here"})
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}
