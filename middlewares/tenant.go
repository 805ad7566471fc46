package middlewares

import (
	"errors"
	"net/http"

	"orderweb/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Tenant resolves the tenant from the :tenant path slug, falling back to the
// X-Tenant header, and stores it in the context. Unknown tenant aborts 404.
func Tenant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("tenant")
		if slug == "" {
			slug = c.GetHeader("X-Tenant")
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "tenant not specified"})
			c.Abort()
			return
		}

		var t entity.Tenant
		if err := db.Where("slug = ?", slug).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "tenant not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			}
			c.Abort()
			return
		}

		c.Set("tenant", &t)
		c.Next()
	}
}
