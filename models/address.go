package models

import "time"

// Address is a shipping destination owned by a user. At most one address per
// user carries IsDefaultShipping; setting a new default clears the others.
type Address struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	Label             string    `json:"label"`
	Street            string    `gorm:"not null" json:"street"`
	Number            string    `json:"number"`
	City              string    `gorm:"not null" json:"city"`
	State             string    `json:"state"`
	PostalCode        string    `json:"postal_code"`
	Country           string    `json:"country"`
	IsDefaultShipping bool      `json:"is_default_shipping"`
	CreatedAt         time.Time `json:"created_at"`
}
