package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware extrae la identidad si viene un bearer token válido,
// pero nunca corta la petición: los endpoints públicos lo usan para variar la
// respuesta según haya o no usuario.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := parseClaims(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		if userID, ok := claims["sub"].(string); ok && userID != "" {
			c.Set("user_id", userID)
		}
		if username := usernameFromClaims(claims); username != "" {
			c.Set("username", username)
		}
		c.Next()
	}
}
