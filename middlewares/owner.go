package middlewares

import (
	"net/http"

	"orderweb/entity"

	"github.com/gin-gonic/gin"
)

// TenantOwner blocks owners from managing restaurants that are not theirs.
// Admins pass through. Must run after AuthMiddleware and Tenant.
func TenantOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role == "admin" {
			c.Next()
			return
		}

		v, ok := c.Get("tenant")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "tenant not specified"})
			c.Abort()
			return
		}
		t := v.(*entity.Tenant)

		userId, _ := c.Get("userId")
		if uid, ok := userId.(uint); !ok || t.OwnerID != uid {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not your restaurant"})
			c.Abort()
			return
		}
		c.Next()
	}
}
