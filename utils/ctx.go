package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the identity the auth middleware stored in the
// gin context. Zero means unauthenticated; handlers answer it with 401.
// The type switch tolerates the float64 that raw JWT claims decode to.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole returns the caller's role claim, or "" when absent.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
