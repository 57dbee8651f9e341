package paymentControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/order"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// ConfirmResult is the outcome of a payment confirmation. Items that lost the
// stock race since checkout come back cancelled so the storefront can tell
// the buyer which lines could not be honored.
type ConfirmResult struct {
	Order          models.Order       `json:"order"`
	CancelledItems []models.OrderItem `json:"cancelled_items,omitempty"`
}

// ConfirmPayment settles an order's items. Stock was only checked at
// checkout, so the decrement happens here as a conditional update
// (stock >= quantity); zero rows affected means another confirmation took the
// last units first, and the item gets a compensating cancellation instead of
// going negative.
func ConfirmPayment(db *gorm.DB, orderID uint) (*ConfirmResult, error) {
	var result ConfirmResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return orderControllers.ErrNotFound
			}
			return err
		}

		for _, item := range order.Items {
			if item.Status == models.ItemStatusCancelled {
				continue
			}
			if item.PaymentStatus != models.PaymentStatusPending &&
				item.PaymentStatus != models.PaymentStatusProcessing {
				continue
			}

			res := tx.Unscoped().Model(&models.Game{}).
				Where("id = ? AND stock >= ?", item.GameID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				// Post-hoc stock exhaustion: the check-then-act window at
				// checkout let two orders in; this one loses the line.
				if err := tx.Model(&models.OrderItem{}).Where("id = ?", item.ID).
					Updates(map[string]interface{}{
						"status":         models.ItemStatusCancelled,
						"payment_status": models.PaymentStatusFailed,
					}).Error; err != nil {
					return err
				}
				item.Status = models.ItemStatusCancelled
				item.PaymentStatus = models.PaymentStatusFailed
				result.CancelledItems = append(result.CancelledItems, item)
				continue
			}

			if err := tx.Model(&models.OrderItem{}).Where("id = ?", item.ID).
				Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
				return err
			}
		}

		if err := orderControllers.RecomputeOrderStatus(tx, order.ID); err != nil {
			return err
		}
		return tx.Preload("Items").First(&result.Order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FailPayment marks every unsettled item of an order as failed. No stock was
// reserved for them, so there is nothing to release.
func FailPayment(db *gorm.DB, orderID uint) (*models.Order, error) {
	var out models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return orderControllers.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND payment_status IN ?", order.ID,
				[]models.PaymentStatus{models.PaymentStatusPending, models.PaymentStatusProcessing}).
			Update("payment_status", models.PaymentStatusFailed).Error; err != nil {
			return err
		}

		if err := orderControllers.RecomputeOrderStatus(tx, order.ID); err != nil {
			return err
		}
		return tx.Preload("Items").First(&out, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /admin/payments/orders/:orderID/confirm
func ConfirmPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		result, err := ConfirmPayment(db, uint(orderID))
		if err != nil {
			c.JSON(orderControllers.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		if len(result.CancelledItems) > 0 {
			log.Printf("⚠️ Order %d: %d item(s) cancelled for stock exhaustion at confirmation", orderID, len(result.CancelledItems))
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /admin/payments/orders/:orderID/fail
func FailPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		order, err := FailPayment(db, uint(orderID))
		if err != nil {
			c.JSON(orderControllers.StatusCode(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
