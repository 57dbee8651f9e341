package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// AdminCancelResult reports the forced cancellation plus whether money has to
// be returned to the buyer. The engine flags the refund obligation; it does
// not move money.
type AdminCancelResult struct {
	Order          models.Order `json:"order"`
	RefundRequired bool         `json:"refund_required"`
}

// CancelOrderAdmin force-cancels every item regardless of fulfillment or
// payment state. This is the only path that can cancel a shipped or delivered
// order. The free-text reason is mandatory and recorded on the order.
func CancelOrderAdmin(db *gorm.DB, orderID uint, reason string) (*AdminCancelResult, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	var result AdminCancelResult
	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := loadScopedOrder(tx, Actor{Role: models.RoleAdmin}, orderID)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			if item.Status == models.ItemStatusCancelled {
				if item.PaymentStatus == models.PaymentStatusPaid {
					result.RefundRequired = true
				}
				continue
			}
			if item.PaymentStatus == models.PaymentStatusPaid {
				result.RefundRequired = true
			}
			if err := cancelItem(tx, item); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("cancel_reason", reason).Error; err != nil {
			return err
		}
		if err := RecomputeOrderStatus(tx, order.ID); err != nil {
			return err
		}
		return tx.Preload("Items").First(&result.Order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelItemAdmin force-cancels a single item regardless of its fulfillment
// or payment state. Like CancelOrderAdmin, the reason is mandatory and is
// recorded on the order, and the response reports the refund obligation.
func CancelItemAdmin(db *gorm.DB, orderID, itemID uint, reason string) (*AdminCancelResult, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	var result AdminCancelResult
	err := db.Transaction(func(tx *gorm.DB) error {
		_, item, err := loadScopedItem(tx, Actor{Role: models.RoleAdmin}, orderID, itemID)
		if err != nil {
			return err
		}
		if item.Status == models.ItemStatusCancelled {
			return &InvalidTransitionError{From: item.Status, To: models.ItemStatusCancelled}
		}

		if item.PaymentStatus == models.PaymentStatusPaid {
			result.RefundRequired = true
		}
		if err := cancelItem(tx, *item); err != nil {
			return err
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("cancel_reason", reason).Error; err != nil {
			return err
		}
		if err := RecomputeOrderStatus(tx, orderID); err != nil {
			return err
		}
		return tx.Preload("Items").First(&result.Order, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type adminCancelRequest struct {
	Reason string `json:"reason"`
}

// POST /admin/orders/:orderID/cancel
func AdminCancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := parseID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		var req adminCancelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := CancelOrderAdmin(db, orderID, req.Reason)
		if err != nil {
			c.JSON(StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		broadcastOrderUpdate(result.Order)
		c.JSON(http.StatusOK, result)
	}
}

type adminTransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// PUT /admin/orders/:orderID/items/:itemID/status
// Admin override of a single item transition; no policy guard applies.
// Cancellations take the reason-carrying path and report the refund
// obligation like an order-level admin cancel.
func AdminTransitionItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err1 := parseID(c.Param("orderID"))
		itemID, err2 := parseID(c.Param("itemID"))
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order or item ID"})
			return
		}

		var req adminTransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		target, err := mapItemStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if target == models.ItemStatusCancelled {
			result, err := CancelItemAdmin(db, orderID, itemID, req.Reason)
			if err != nil {
				c.JSON(StatusCode(err), gin.H{"error": err.Error()})
				return
			}
			broadcastOrderUpdate(result.Order)
			c.JSON(http.StatusOK, result)
			return
		}

		item, err := TransitionItem(db, Actor{Role: models.RoleAdmin}, orderID, itemID, target)
		if err != nil {
			c.JSON(StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		notifyOrder(db, orderID)
		c.JSON(http.StatusOK, item)
	}
}

// GET /admin/orders
func ListAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}
