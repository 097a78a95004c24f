package models

import (
	"time"
)

type Admin struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null;default:'admin'" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Email        string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// PasswordReset stores a hashed one-time recovery code. The plaintext code is
// only ever sent to the admin email address.
type PasswordReset struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Email      string     `gorm:"type:varchar(255);index;not null" json:"email"`
	CodeHash   string     `gorm:"type:varchar(64);not null" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expiresAt"`
	ConsumedAt *time.Time `json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
}
