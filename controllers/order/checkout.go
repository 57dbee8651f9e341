package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// checkoutKeyTTL is the window inside which a retried idempotency key is
// answered with the original order.
const checkoutKeyTTL = 48 * time.Hour

// CheckoutRequest carries everything needed to place an order. When Items is
// empty the buyer's cart is used (and cleared in the same transaction). The
// payment method is a plain descriptor; no gateway is contacted here.
type CheckoutRequest struct {
	Items          []CheckoutLine `json:"items"`
	AddressID      uint           `json:"address_id" binding:"required"`
	ShippingMethod string         `json:"shipping_method" binding:"required"`
	CouponCode     string         `json:"coupon_code"`
	PaymentMethod  string         `json:"payment_method" binding:"required"`
	IdempotencyKey string         `json:"idempotency_key"`
}

// SubmitCheckout prices the cart and persists the order with its items in a
// single transaction. Stock is validated but not reserved; reservation
// happens at payment confirmation. A repeated idempotency key returns the
// order created by the first submission.
func SubmitCheckout(db *gorm.DB, buyerID uint, req CheckoutRequest) (*models.Order, error) {
	if req.IdempotencyKey != "" {
		if existing, err := findReplay(db, buyerID, req.IdempotencyKey); err != nil {
			return nil, err
		} else if existing != nil {
			return existing, nil
		}
	}

	// Shipping address must exist AND belong to the buyer; a mismatch is
	// indistinguishable from absence so ownership never leaks.
	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", req.AddressID, buyerID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		lines := req.Items
		fromCart := len(lines) == 0

		var cart models.Cart
		if fromCart {
			if err := tx.Preload("Items").Where("user_id = ?", buyerID).First(&cart).Error; err != nil {
				return ErrEmptyCart
			}
			if len(cart.Items) == 0 {
				return ErrEmptyCart
			}
			for _, item := range cart.Items {
				lines = append(lines, CheckoutLine{GameID: item.GameID, Quantity: item.Quantity})
			}
		}

		pricing, err := ComputePricing(tx, lines, req.CouponCode, req.ShippingMethod)
		if err != nil {
			return err
		}

		order = models.Order{
			ExternalID:        uuid.NewString(),
			UserID:            buyerID,
			Items:             pricing.Items,
			ShippingAddressID: address.ID,
			PaymentMethod:     req.PaymentMethod,
			ShippingMethod:    req.ShippingMethod,
			Status:            models.OrderStatusPending,
			PaymentStatus:     models.PaymentStatusPending,
			Subtotal:          pricing.Subtotal,
			ShippingCost:      pricing.ShippingCost,
			Tax:               pricing.Tax,
			Discount:          pricing.Discount,
			Total:             pricing.Total,
			CreatedAt:         time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if req.IdempotencyKey != "" {
			key := models.CheckoutKey{
				Key:       req.IdempotencyKey,
				UserID:    buyerID,
				OrderID:   order.ID,
				ExpiresAt: time.Now().Add(checkoutKeyTTL),
			}
			if err := tx.Create(&key).Error; err != nil {
				// Unique violation → a concurrent submission won; roll back
				// and let the caller pick up the winner's order.
				return err
			}
		}

		if fromCart {
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if req.IdempotencyKey != "" {
			if existing, lookupErr := findReplay(db, buyerID, req.IdempotencyKey); lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}

	return &order, nil
}

// findReplay resolves an idempotency key to the order it already created.
func findReplay(db *gorm.DB, buyerID uint, key string) (*models.Order, error) {
	var record models.CheckoutKey
	err := db.Where("key = ? AND user_id = ? AND expires_at > ?", key, buyerID, time.Now()).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := db.Preload("Items").First(&order, record.OrderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /user/checkout
func SubmitCheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := SubmitCheckout(db, actor.ID, req)
		if err != nil {
			c.JSON(StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusCreated, order)
	}
}
