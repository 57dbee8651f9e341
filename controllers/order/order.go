package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// mapItemStatus parses a client-supplied item status string.
func mapItemStatus(status string) (models.ItemStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(models.ItemStatusPending):
		return models.ItemStatusPending, nil
	case string(models.ItemStatusProcessing):
		return models.ItemStatusProcessing, nil
	case string(models.ItemStatusShipped):
		return models.ItemStatusShipped, nil
	case string(models.ItemStatusDelivered):
		return models.ItemStatusDelivered, nil
	case string(models.ItemStatusCancelled):
		return models.ItemStatusCancelled, nil
	default:
		return "", errors.New("invalid item status")
	}
}

// GET /user/orders
func ListMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", actor.ID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
// Accepts the numeric id or the public external reference.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		ref := c.Param("orderID")

		// A numeric ref is the row id; anything else is the public UUID.
		query := db.Preload("Items")
		if id, err := parseID(ref); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("external_id = ?", ref)
		}
		if actor.Role != models.RoleAdmin {
			query = query.Where("user_id = ?", actor.ID)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// POST /user/orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		orderID, err := parseID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		var req cancelOrderRequest
		_ = c.ShouldBindJSON(&req) // reason is optional for buyers

		order, err := CancelOrder(db, actor, orderID, req.Reason)
		if err != nil {
			c.JSON(StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, order)
	}
}

// POST /user/orders/:orderID/confirm-delivery
func ConfirmDeliveryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		orderID, err := parseID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		order, err := ConfirmDelivery(db, actor, orderID)
		if err != nil {
			c.JSON(StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, order)
	}
}
