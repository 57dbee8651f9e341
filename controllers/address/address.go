package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

type addressInput struct {
	Label             string `json:"label"`
	Street            string `json:"street" binding:"required"`
	Number            string `json:"number"`
	City              string `json:"city" binding:"required"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
	Country           string `json:"country"`
	IsDefaultShipping bool   `json:"is_default_shipping"`
}

// GET /user/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(uint)

		var input addressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.Address{
			UserID:            userID,
			Label:             input.Label,
			Street:            input.Street,
			Number:            input.Number,
			City:              input.City,
			State:             input.State,
			PostalCode:        input.PostalCode,
			Country:           input.Country,
			IsDefaultShipping: input.IsDefaultShipping,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if address.IsDefaultShipping {
				// At most one default per user: clear the others first.
				if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).
					Update("is_default_shipping", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}

		c.JSON(http.StatusCreated, address)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(uint)

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		var input addressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefaultShipping && !address.IsDefaultShipping {
				if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).
					Update("is_default_shipping", false).Error; err != nil {
					return err
				}
			}
			return tx.Model(&address).Updates(map[string]interface{}{
				"label":               input.Label,
				"street":              input.Street,
				"number":              input.Number,
				"city":                input.City,
				"state":               input.State,
				"postal_code":         input.PostalCode,
				"country":             input.Country,
				"is_default_shipping": input.IsDefaultShipping,
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
