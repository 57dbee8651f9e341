package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/auth"
	couponControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/coupon"
	gameControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/game"
	orderControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/order"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/middleware"
)

// SetupAuthRoutes registers the public authentication endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/google", auth.GoogleLoginHandler(db))
		authGroup.POST("/logout", middleware.ValidateToken(db), auth.LogoutHandler(db))
	}
}

// SetupPublicRoutes registers unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/games", gameControllers.GetGames(db))
	r.GET("/games/:id", gameControllers.GetGameByID(db))

	// Pre-checkout coupon validation for UI feedback
	r.POST("/coupons/validate", couponControllers.ValidateCoupon(db))

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderEventsHandler)
}
