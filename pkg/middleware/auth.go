package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnilYadav17/videoHub/pkg/auth"
)

// UserIDKey is where RequireAuth stores the caller's id in the gin context.
const UserIDKey = "userID"

// RequireAuth resolves the caller's identity from the Authorization header
// and aborts with 401 when no valid session token is present.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the id stored by RequireAuth, empty when absent.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
