package models

import "time"

// RevokedToken stores the JTI of logged-out JWTs so that revocation is shared
// by every instance behind the load balancer instead of living in one
// process's memory. Rows past ExpiresAt are purged by the maintenance sweep.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	JTI       string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
