package models

import (
	"time"
)

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

type Contact struct {
	ID        uint          `gorm:"primarykey" json:"id"`
	Name      string        `gorm:"type:varchar(100);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null" json:"email"`
	Subject   string        `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    ContactStatus `gorm:"type:varchar(10);not null;default:'new';index" json:"status"`
	IPAddress string        `gorm:"type:varchar(45)" json:"ipAddress,omitempty"`
	UserAgent string        `gorm:"type:varchar(500)" json:"userAgent,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}
