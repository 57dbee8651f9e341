package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// GET /seller/items
// A single order can span multiple sellers, so the seller view filters at the
// item level; the seller never sees the rest of the order.
func ListSellerItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)

		query := db.Where("seller_id = ?", actor.ID)
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var items []models.OrderItem
		if err := query.Order("id DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

type sellerTransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /seller/orders/:orderID/items/:itemID/status
func SellerTransitionItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		orderID, err1 := parseID(c.Param("orderID"))
		itemID, err2 := parseID(c.Param("itemID"))
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order or item ID"})
			return
		}

		var req sellerTransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		target, err := mapItemStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := TransitionItem(db, actor, orderID, itemID, target)
		if err != nil {
			c.JSON(StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		notifyOrder(db, orderID)
		c.JSON(http.StatusOK, item)
	}
}
