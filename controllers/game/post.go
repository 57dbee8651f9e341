package gameControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "games")
	}
	return "/var/www/gamevault/uploads/games"
}

// saveGameImage stores an uploaded cover and returns its public URL.
func saveGameImage(c *gin.Context, fieldName string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", err
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/games/%s", filename), nil
}

// CreateGame registers a new game under the calling seller. Multipart form:
// title, price and stock are required, cover image optional.
func CreateGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := sellerIDVal.(uint)

		title := c.PostForm("title")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		if title == "" || priceStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, price, and stock are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}

		var imageURL string
		if _, err := c.FormFile("image"); err == nil {
			imageURL, err = saveGameImage(c, "image")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
		}

		game := models.Game{
			SellerID:    sellerID,
			Title:       title,
			Description: c.PostForm("description"),
			Genre:       c.PostForm("genre"),
			Platform:    c.PostForm("platform"),
			Price:       price,
			Stock:       stock,
			Image:       imageURL,
		}

		if err := db.Create(&game).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
			return
		}

		c.JSON(http.StatusCreated, game)
	}
}
