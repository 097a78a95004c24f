package models

import (
	"time"
)

type Education struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Institution string    `gorm:"type:varchar(200);not null" json:"institution"`
	Degree      string    `gorm:"type:varchar(200);not null" json:"degree"`
	Field       string    `gorm:"type:varchar(200)" json:"field,omitempty"`
	StartYear   int       `json:"startYear,omitempty"`
	EndYear     int       `json:"endYear,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Order       int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
