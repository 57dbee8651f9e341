package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	gameControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/game"
	orderControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/order"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/middleware"
)

// SetupSellerRoutes registers all "/seller/*" endpoints. Sellers see and act
// on order items that reference their own games, never whole orders.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken(db), middleware.SellerOnly())
	{
		// ─────────── Catalog Management ───────────
		gameGroup := sellerGroup.Group("/games")
		{
			gameGroup.GET("", gameControllers.GetSellerGames(db))
			gameGroup.POST("", gameControllers.CreateGame(db))
			gameGroup.PUT("/:id", gameControllers.UpdateGame(db))
			gameGroup.DELETE("/:id", gameControllers.DeleteGame(db))
		}

		// ─────────── Fulfillment ───────────
		sellerGroup.GET("/items", orderControllers.ListSellerItemsHandler(db))
		sellerGroup.PUT("/orders/:orderID/items/:itemID/status", orderControllers.SellerTransitionItemHandler(db))
	}
}
