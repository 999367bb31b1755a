package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const InternalSecretHeader = "x-internal-secret"

// InternalAuthMiddleware guards service-to-service routes with a shared
// secret so external clients cannot reach the internal surface.
func InternalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(InternalSecretHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "internal authentication required"})
			c.Abort()
			return
		}
		if token != secret {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "invalid internal credentials"})
			c.Abort()
			return
		}
		c.Next()
	}
}
