package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Seller and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupPublicRoutes(r, db)

	// Buyer routes (JWT-protected, client role)
	SetupUserRoutes(r, db)

	// Seller routes (JWT-protected, seller role)
	SetupSellerRoutes(r, db)

	// Admin routes (JWT-protected, admin role)
	SetupAdminRoutes(r, db)
}
