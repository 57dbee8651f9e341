package models

import (
	"time"

	"gorm.io/gorm"
)

// Game is a sellable product owned by exactly one seller. Rows are
// soft-deleted so historical order items can still reference them.
type Game struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID    uint           `gorm:"index;not null" json:"seller_id"`
	Seller      User           `gorm:"foreignKey:SellerID" json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Genre       string         `gorm:"index" json:"genre"`
	Platform    string         `json:"platform"` // e.g. "SNES", "Mega Drive"
	Price       float64        `gorm:"not null" json:"price"`
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
