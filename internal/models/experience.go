package models

import (
	"time"
)

type Experience struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Company      string     `gorm:"type:varchar(200);not null" json:"company"`
	Position     string     `gorm:"type:varchar(200);not null" json:"position"`
	Location     string     `gorm:"type:varchar(200)" json:"location,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCurrent    bool       `gorm:"not null;default:false" json:"isCurrent"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Achievements []string   `gorm:"serializer:json" json:"achievements,omitempty"`
	Order        int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
