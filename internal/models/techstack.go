package models

import (
	"time"
)

type TechCategory string

const (
	TechCategoryFrontend TechCategory = "Frontend"
	TechCategoryBackend  TechCategory = "Backend"
	TechCategoryMobile   TechCategory = "Mobile"
	TechCategoryGameDev  TechCategory = "Game Dev"
	TechCategoryDesign   TechCategory = "Design"
	TechCategoryTools    TechCategory = "Tools"
)

type TechStack struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name"`
	Category    TechCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Icon        string       `gorm:"type:varchar(500)" json:"icon,omitempty"`
	Proficiency int          `gorm:"not null;default:0" json:"proficiency,omitempty"`
	Order       int          `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive    bool         `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (c TechCategory) Valid() bool {
	switch c {
	case TechCategoryFrontend, TechCategoryBackend, TechCategoryMobile,
		TechCategoryGameDev, TechCategoryDesign, TechCategoryTools:
		return true
	}
	return false
}
