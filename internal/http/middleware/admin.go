package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKey guards admin mutations. When no key is configured the check is
// a pass-through, which matches the open admin console this service grew
// out of.
func AdminKey(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if required == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if key != required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid admin key",
			})
			return
		}
		c.Next()
	}
}
