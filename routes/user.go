package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/address"
	cartControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/cart"
	orderControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/order"
	userControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/user"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware
// and the client role.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(db), middleware.ClientOnly())
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
		userGroup.DELETE("/", userControllers.DeleteAccount(db))
		userGroup.POST("/request-seller", userControllers.RequestSeller(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:game_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", addressControllers.GetAddresses(db))
			addressGroup.POST("/", addressControllers.CreateAddress(db))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.SubmitCheckoutHandler(db))
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.GET("/", orderControllers.ListMyOrdersHandler(db))
			orderGroup.GET("/:orderID", orderControllers.GetOrderHandler(db))
			orderGroup.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
			orderGroup.POST("/:orderID/confirm-delivery", orderControllers.ConfirmDeliveryHandler(db))
		}
	}
}
