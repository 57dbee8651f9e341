package gameControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// DeleteGame soft-deletes a game owned by the calling seller. Historical
// order items keep their snapshot of the row, so nothing is hard-removed.
func DeleteGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID is required"})
			return
		}

		game, ok := loadOwnedGame(db, c, id)
		if !ok {
			return
		}

		if err := db.Delete(&models.Game{}, game.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
	}
}
