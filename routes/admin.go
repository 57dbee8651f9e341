package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/admin"
	cartControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/cart"
	couponControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/coupon"
	gameControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/game"
	orderControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/order"
	paymentControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/payment"
	userControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/user"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires JWT
// middleware and the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(db), middleware.AdminOnly())
	{
		// ─────────── Dashboard & User Management ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboard(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Seller Approval Workflow ───────────
		sellerMgmt := adminGroup.Group("/seller-management")
		{
			sellerMgmt.GET("/pending", adminController.ListPendingSellers(db))
			sellerMgmt.POST("/approve", adminController.ApproveSeller(db))
			sellerMgmt.POST("/reject", adminController.RejectSeller(db))
		}

		// ─────────── Order Oversight ───────────
		orderMgmt := adminGroup.Group("/orders")
		{
			orderMgmt.GET("", orderControllers.ListAllOrdersHandler(db))
			orderMgmt.GET("/:orderID", orderControllers.GetOrderHandler(db))
			orderMgmt.POST("/:orderID/cancel", orderControllers.AdminCancelOrderHandler(db))
			orderMgmt.PUT("/:orderID/items/:itemID/status", orderControllers.AdminTransitionItemHandler(db))
		}

		// ─────────── Payments ───────────
		paymentMgmt := adminGroup.Group("/payments")
		{
			paymentMgmt.POST("/orders/:orderID/confirm", paymentControllers.ConfirmPaymentHandler(db))
			paymentMgmt.POST("/orders/:orderID/fail", paymentControllers.FailPaymentHandler(db))
		}

		// ─────────── Coupon Management ───────────
		couponMgmt := adminGroup.Group("/coupons")
		{
			couponMgmt.POST("", couponControllers.CreateCoupon(db))
			couponMgmt.GET("", couponControllers.GetCoupons(db))
			couponMgmt.PUT("/:id", couponControllers.UpdateCoupon(db))
			couponMgmt.DELETE("/:id", couponControllers.DeleteCoupon(db))
		}

		// ─────────── Catalog Oversight ───────────
		catalogMgmt := adminGroup.Group("/games")
		{
			catalogMgmt.PUT("/:id", gameControllers.UpdateGame(db))
			catalogMgmt.DELETE("/:id", gameControllers.DeleteGame(db))
			catalogMgmt.POST("/import-excel", gameControllers.ImportGamesFromExcel(db))
			catalogMgmt.GET("/export-excel", gameControllers.ExportGamesToExcel(db))
		}

		// ─────────── Support ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}
}
