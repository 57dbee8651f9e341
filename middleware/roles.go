package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// RequireRole gates a route group to the given roles. Must run after
// ValidateToken.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		role := roleVal.(models.Role)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// ClientOnly restricts a group to buyers.
func ClientOnly() gin.HandlerFunc {
	return RequireRole(models.RoleUser)
}

// SellerOnly restricts a group to sellers.
func SellerOnly() gin.HandlerFunc {
	return RequireRole(models.RoleSeller)
}

// AdminOnly restricts a group to admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
