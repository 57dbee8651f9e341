package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Picture         string    `json:"picture"`
	Provider        string    `json:"provider"` // "local" or "google"
	Role            Role      `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	WantsToBeSeller bool      `json:"wants_to_be_seller"`
	IsDeleted       bool      `json:"is_deleted"`
	Cart            Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Addresses       []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders          []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
