package gameControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

var sortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"title":      true,
}

// GetGames lists the public catalog with search, genre, platform and price
// filters. Soft-deleted games are excluded automatically.
func GetGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		genre := c.Query("genre")
		platform := c.Query("platform")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Game{})

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if genre != "" {
			query = query.Where("genre = ?", genre)
		}
		if platform != "" {
			query = query.Where("platform = ?", platform)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var games []models.Game
		if err := query.Order(orderClause).Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

// GetSellerGames lists the caller's own catalog, including out-of-stock rows.
func GetSellerGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, _ := c.Get("user_id")

		var games []models.Game
		if err := db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}
		c.JSON(http.StatusOK, games)
	}
}
