package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// GetDashboard aggregates the counters shown on the admin landing page.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCount, sellerCount, gameCount, orderCount int64
		var revenue float64

		if err := db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&userCount).Error; err != nil {
			log.Println("❌ Failed to count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
			return
		}
		db.Model(&models.User{}).Where("role = ?", models.RoleSeller).Count(&sellerCount)
		db.Model(&models.Game{}).Count(&gameCount)
		db.Model(&models.Order{}).Count(&orderCount)
		db.Model(&models.Order{}).Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total), 0)").Scan(&revenue)

		c.JSON(http.StatusOK, gin.H{
			"users":   userCount,
			"sellers": sellerCount,
			"games":   gameCount,
			"orders":  orderCount,
			"revenue": revenue,
		})
	}
}
