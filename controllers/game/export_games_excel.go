package gameControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

func ExportGamesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []models.Game
		if err := db.Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Games")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "SellerID", "Title", "Description", "Genre", "Platform",
			"Price", "Stock", "Image", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, g := range games {
			row := sheet.AddRow()
			row.AddCell().SetValue(g.ID)
			row.AddCell().SetValue(g.SellerID)
			row.AddCell().SetValue(g.Title)
			row.AddCell().SetValue(g.Description)
			row.AddCell().SetValue(g.Genre)
			row.AddCell().SetValue(g.Platform)
			row.AddCell().SetValue(g.Price)
			row.AddCell().SetValue(g.Stock)
			row.AddCell().SetValue(g.Image)
			row.AddCell().SetValue(g.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(g.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=games.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
