package models

import "time"

// CheckoutKey makes checkout submission idempotent: the unique index on Key
// guarantees a client retry maps back to the order created by the first
// attempt instead of creating a duplicate. Rows expire after a TTL window and
// are purged by the maintenance sweep.
type CheckoutKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	UserID    uint      `gorm:"index" json:"user_id"`
	OrderID   uint      `json:"order_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
