package models

import "time"

// Coupon reduces the checkout subtotal by a fractional rate when the subtotal
// reaches MinValue. Lookup is stateless; coupons are not single-use.
type Coupon struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"unique;not null" json:"code"`
	Discount  float64   `gorm:"not null" json:"discount"` // fractional rate, e.g. 0.10
	MinValue  float64   `json:"min_value"`
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
