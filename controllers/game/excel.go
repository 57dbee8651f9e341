package gameControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// ImportGamesFromExcel bulk-loads the catalog from a spreadsheet. Columns:
// ID, SellerID, Title, Description, Genre, Platform, Price, Stock, Image.
// Rows with an existing ID update that game; others insert.
func ImportGamesFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			sellerID, errSeller := strconv.ParseUint(get(1), 10, 64)
			title := get(2)
			description := get(3)
			genre := get(4)
			platform := get(5)
			price, errPrice := strconv.ParseFloat(get(6), 64)
			stock, _ := strconv.Atoi(get(7))
			image := get(8)

			if title == "" || errSeller != nil || errPrice != nil {
				skippedCount++
				continue
			}

			game := models.Game{
				SellerID:    uint(sellerID),
				Title:       title,
				Description: description,
				Genre:       genre,
				Platform:    platform,
				Price:       price,
				Stock:       stock,
				Image:       image,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Game
					if err := db.First(&existing, id).Error; err == nil {
						existing.SellerID = game.SellerID
						existing.Title = game.Title
						existing.Description = game.Description
						existing.Genre = game.Genre
						existing.Platform = game.Platform
						existing.Price = game.Price
						existing.Stock = game.Stock
						existing.Image = game.Image

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&game).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
