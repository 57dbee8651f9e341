package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// ListPendingSellers returns all users awaiting a seller upgrade.
func ListPendingSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.User
		if err := db.
			Select("id", "email", "name", "created_at").
			Where("wants_to_be_seller = ? AND role = ?", true, models.RoleUser).
			Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending sellers"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func ApproveSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var user models.User
		if err := db.Where("email = ? AND wants_to_be_seller = ?", req.Email, true).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller request not found"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"role":               models.RoleSeller,
			"wants_to_be_seller": false,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve seller"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Seller approved"})
	}
}

func RejectSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if err := db.Model(&models.User{}).Where("email = ?", req.Email).
			Update("wants_to_be_seller", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject seller request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Seller request rejected"})
	}
}
