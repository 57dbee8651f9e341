package models

import "time"

type OrderStatus string
type ItemStatus string
type PaymentStatus string

const (
	// Order-level statuses. The order status is derived from its items'
	// statuses inside every transaction that mutates an item.
	OrderStatusPending            OrderStatus = "pending"
	OrderStatusProcessing         OrderStatus = "processing"
	OrderStatusShipped            OrderStatus = "shipped"
	OrderStatusDelivered          OrderStatus = "delivered"
	OrderStatusCancelled          OrderStatus = "cancelled"
	OrderStatusPartiallyCancelled OrderStatus = "partially_cancelled"

	// Item-level statuses (happy path: pending → processing → shipped → delivered)
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusProcessing ItemStatus = "processing"
	ItemStatusShipped    ItemStatus = "shipped"
	ItemStatusDelivered  ItemStatus = "delivered"
	ItemStatusCancelled  ItemStatus = "cancelled"

	// Payment statuses, tracked per item and summarized on the order
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Order groups one checkout transaction. Total = Subtotal + ShippingCost +
// Tax - Discount, computed once at creation. Orders are never hard-deleted;
// cancellation is a status value.
type Order struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	ExternalID        string        `gorm:"uniqueIndex;not null" json:"external_id"`
	UserID            uint          `gorm:"index;not null" json:"user_id"`
	User              User          `gorm:"foreignKey:UserID" json:"-"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddressID uint          `json:"shipping_address_id"`
	PaymentMethod     string        `json:"payment_method"` // descriptor only, e.g. "card ending 4242"
	ShippingMethod    string        `json:"shipping_method"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	Subtotal          float64       `json:"subtotal"`
	ShippingCost      float64       `json:"shipping_cost"`
	Tax               float64       `json:"tax"`
	Discount          float64       `json:"discount"`
	Total             float64       `json:"total"`
	CancelReason      string        `json:"cancel_reason,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// OrderItem is one product line, tracked through its own fulfillment and
// payment lifecycle. UnitPrice is a snapshot taken at purchase time and is
// never rewritten, so later catalog price changes do not affect the buyer.
type OrderItem struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderID       uint          `gorm:"index" json:"order_id"`
	GameID        uint          `json:"game_id"`
	SellerID      uint          `gorm:"index" json:"seller_id"`
	GameTitle     string        `json:"game_title"`
	GameImage     string        `json:"game_image"`
	Quantity      int           `json:"quantity"`
	UnitPrice     float64       `json:"unit_price"`
	Status        ItemStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
}

// DeriveOrderStatus summarizes item statuses into the order status:
// all cancelled → cancelled, some cancelled → partially_cancelled,
// all delivered → delivered, everything at least shipped → shipped,
// any movement → processing, otherwise pending.
func DeriveOrderStatus(items []OrderItem) OrderStatus {
	if len(items) == 0 {
		return OrderStatusPending
	}
	var cancelled, delivered, shipped, moving int
	for _, it := range items {
		switch it.Status {
		case ItemStatusCancelled:
			cancelled++
		case ItemStatusDelivered:
			delivered++
		case ItemStatusShipped:
			shipped++
		case ItemStatusProcessing:
			moving++
		}
	}
	active := len(items) - cancelled
	switch {
	case cancelled == len(items):
		return OrderStatusCancelled
	case cancelled > 0:
		return OrderStatusPartiallyCancelled
	case delivered == active:
		return OrderStatusDelivered
	case delivered+shipped == active:
		return OrderStatusShipped
	case delivered+shipped+moving > 0:
		return OrderStatusProcessing
	default:
		return OrderStatusPending
	}
}

// DeriveOrderPaymentStatus summarizes item payment statuses: paid as soon as
// any item is paid, failed when every item failed, refunded when every
// settled item was refunded.
func DeriveOrderPaymentStatus(items []OrderItem) PaymentStatus {
	if len(items) == 0 {
		return PaymentStatusPending
	}
	var paid, failed, refunded int
	for _, it := range items {
		switch it.PaymentStatus {
		case PaymentStatusPaid:
			paid++
		case PaymentStatusFailed:
			failed++
		case PaymentStatusRefunded:
			refunded++
		}
	}
	switch {
	case paid > 0:
		return PaymentStatusPaid
	case refunded > 0 && refunded+failed == len(items):
		return PaymentStatusRefunded
	case failed == len(items):
		return PaymentStatusFailed
	default:
		return PaymentStatusPending
	}
}

// AllShippedOrDelivered reports whether every non-cancelled item has reached
// at least the shipped state. Used to let buyers confirm delivery on orders
// that are partially cancelled but otherwise fully shipped.
func AllShippedOrDelivered(items []OrderItem) bool {
	seen := false
	for _, it := range items {
		if it.Status == ItemStatusCancelled {
			continue
		}
		seen = true
		if it.Status != ItemStatusShipped && it.Status != ItemStatusDelivered {
			return false
		}
	}
	return seen
}
