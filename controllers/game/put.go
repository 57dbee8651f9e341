package gameControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// loadOwnedGame fetches a game the caller may edit: sellers only their own
// rows, admins any. A non-owned game reads as absent.
func loadOwnedGame(db *gorm.DB, c *gin.Context, id string) (*models.Game, bool) {
	var game models.Game
	if err := db.First(&game, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return nil, false
	}

	role, _ := c.Get("role")
	sellerID, _ := c.Get("user_id")
	if role != models.RoleAdmin && game.SellerID != sellerID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return nil, false
	}
	return &game, true
}

// UpdateGame updates a game owned by the calling seller.
// Accepts the same fields as CreateGame and an optional "image" file.
func UpdateGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		if _, err := strconv.ParseUint(idStr, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
			return
		}

		game, ok := loadOwnedGame(db, c, idStr)
		if !ok {
			return
		}

		if v := c.PostForm("title"); v != "" {
			game.Title = v
		}
		if v := c.PostForm("description"); v != "" {
			game.Description = v
		}
		if v := c.PostForm("genre"); v != "" {
			game.Genre = v
		}
		if v := c.PostForm("platform"); v != "" {
			game.Platform = v
		}
		if v := c.PostForm("price"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				game.Price = f
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if i, err := strconv.Atoi(v); err == nil && i >= 0 {
				game.Stock = i
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		if _, err := c.FormFile("image"); err == nil {
			imageURL, err := saveGameImage(c, "image")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			game.Image = imageURL
		}

		if err := db.Save(game).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
			return
		}

		c.JSON(http.StatusOK, game)
	}
}
