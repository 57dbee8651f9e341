package orderControllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// ActorFromContext rebuilds the verified caller placed in the request context
// by the auth middleware.
func ActorFromContext(c *gin.Context) Actor {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	actor := Actor{Role: models.RoleUser}
	if id, ok := userID.(uint); ok {
		actor.ID = id
	}
	if r, ok := role.(models.Role); ok {
		actor.Role = r
	}
	return actor
}

// loadScopedItem fetches an order and one of its items, applying the caller's
// visibility in the same query path: a non-owned order/item reads as absent,
// never as forbidden, so ownership cannot be probed via error codes.
func loadScopedItem(tx *gorm.DB, actor Actor, orderID, itemID uint) (*models.Order, *models.OrderItem, error) {
	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	var item models.OrderItem
	if err := tx.Where("id = ? AND order_id = ?", itemID, orderID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleSeller:
		if item.SellerID != actor.ID {
			return nil, nil, ErrNotFound
		}
	default:
		if order.UserID != actor.ID {
			return nil, nil, ErrNotFound
		}
	}
	return &order, &item, nil
}

// TransitionItem moves one order item to the target status under the
// role-scoped policy. The current status is re-read inside the transaction
// and the update is conditional on it, so a concurrent mutation surfaces as
// ErrConcurrentUpdate instead of a lost update.
func TransitionItem(db *gorm.DB, actor Actor, orderID, itemID uint, target models.ItemStatus) (*models.OrderItem, error) {
	var out models.OrderItem
	err := db.Transaction(func(tx *gorm.DB) error {
		order, item, err := loadScopedItem(tx, actor, orderID, itemID)
		if err != nil {
			return err
		}

		if !CanTransition(actor.Role, item.Status, target) {
			return &InvalidTransitionError{From: item.Status, To: target}
		}
		if target == models.ItemStatusCancelled && actor.Role == models.RoleAdmin {
			// Admin cancellations carry a mandatory reason and a refund
			// report; they go through CancelItemAdmin / CancelOrderAdmin.
			return ErrReasonRequired
		}
		if target == models.ItemStatusShipped && actor.Role != models.RoleAdmin &&
			item.PaymentStatus != models.PaymentStatusPaid {
			return ErrPaymentNotConfirmed
		}

		updates := map[string]interface{}{"status": target}
		if target == models.ItemStatusCancelled && item.PaymentStatus == models.PaymentStatusPaid {
			// Cancelling a paid item releases its stock reservation and
			// flags the payment for refund.
			if err := ReleaseStock(tx, item.GameID, item.Quantity); err != nil {
				return err
			}
			updates["payment_status"] = models.PaymentStatusRefunded
		}

		result := tx.Model(&models.OrderItem{}).
			Where("id = ? AND status = ?", item.ID, item.Status).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}

		if err := RecomputeOrderStatus(tx, order.ID); err != nil {
			return err
		}
		return tx.First(&out, item.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmDelivery is the buyer's acknowledgement that the order arrived.
// Allowed while the order is shipped (or partially cancelled with every
// remaining item shipped); confirming an already-delivered order is a no-op
// that still succeeds.
func ConfirmDelivery(db *gorm.DB, actor Actor, orderID uint) (*models.Order, error) {
	var out models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := loadScopedOrder(tx, actor, orderID)
		if err != nil {
			return err
		}

		if order.Status == models.OrderStatusDelivered {
			out = *order
			return nil // idempotent
		}
		if order.Status != models.OrderStatusShipped && !models.AllShippedOrDelivered(order.Items) {
			return &InvalidOrderStateError{Status: order.Status, Action: "confirm delivery of"}
		}

		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND status NOT IN ?", order.ID,
				[]models.ItemStatus{models.ItemStatusCancelled, models.ItemStatusDelivered}).
			Update("status", models.ItemStatusDelivered).Error; err != nil {
			return err
		}

		if err := RecomputeOrderStatus(tx, order.ID); err != nil {
			return err
		}
		return tx.Preload("Items").First(&out, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder is the buyer-requested cancellation, allowed only while the
// order is pending, processing or partially cancelled. Sellers cancel single
// items through TransitionItem; admins use CancelOrderAdmin.
func CancelOrder(db *gorm.DB, actor Actor, orderID uint, reason string) (*models.Order, error) {
	var out models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := loadScopedOrder(tx, actor, orderID)
		if err != nil {
			return err
		}
		if !buyerCanCancel(order.Status) {
			return &InvalidOrderStateError{Status: order.Status, Action: "cancel"}
		}

		cancelled := 0
		for _, item := range order.Items {
			if item.Status == models.ItemStatusCancelled || item.Status == models.ItemStatusDelivered ||
				item.Status == models.ItemStatusShipped {
				continue
			}
			if err := cancelItem(tx, item); err != nil {
				return err
			}
			cancelled++
		}
		if cancelled == 0 {
			// Every remaining item is already shipped or settled; report the
			// blocking status instead of silently succeeding.
			return &InvalidOrderStateError{Status: order.Status, Action: "cancel"}
		}

		if reason != "" {
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("cancel_reason", reason).Error; err != nil {
				return err
			}
		}
		if err := RecomputeOrderStatus(tx, order.ID); err != nil {
			return err
		}
		return tx.Preload("Items").First(&out, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// cancelItem cancels one item with the conditional-status guard, releasing
// any paid reservation.
func cancelItem(tx *gorm.DB, item models.OrderItem) error {
	updates := map[string]interface{}{"status": models.ItemStatusCancelled}
	if item.PaymentStatus == models.PaymentStatusPaid {
		if err := ReleaseStock(tx, item.GameID, item.Quantity); err != nil {
			return err
		}
		updates["payment_status"] = models.PaymentStatusRefunded
	}
	result := tx.Model(&models.OrderItem{}).
		Where("id = ? AND status = ?", item.ID, item.Status).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	return nil
}

// loadScopedOrder fetches an order with its items under the caller's scope.
func loadScopedOrder(tx *gorm.DB, actor Actor, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin && order.UserID != actor.ID {
		return nil, ErrNotFound
	}
	return &order, nil
}

// RecomputeOrderStatus re-derives the aggregate order and payment status from
// the item rows. Must run inside the same transaction as any item mutation so
// the summary can never drift from the items.
func RecomputeOrderStatus(tx *gorm.DB, orderID uint) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}
	return tx.Model(&models.Order{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":         models.DeriveOrderStatus(items),
			"payment_status": models.DeriveOrderPaymentStatus(items),
		}).Error
}

// ReleaseStock returns a reserved quantity to the catalog. The conditional
// increment mirrors the confirm-time decrement.
func ReleaseStock(tx *gorm.DB, gameID uint, quantity int) error {
	// Unscoped: the game may have been soft-deleted since the purchase.
	return tx.Unscoped().Model(&models.Game{}).
		Where("id = ?", gameID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity)).Error
}
