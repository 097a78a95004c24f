package models

import (
	"time"
)

type SettingType string

const (
	SettingTypeString  SettingType = "string"
	SettingTypeNumber  SettingType = "number"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeJSON    SettingType = "json"
	SettingTypeArray   SettingType = "array"
)

type SettingCategory string

const (
	SettingCategoryGeneral    SettingCategory = "general"
	SettingCategorySocial     SettingCategory = "social"
	SettingCategorySEO        SettingCategory = "seo"
	SettingCategoryAppearance SettingCategory = "appearance"
	SettingCategoryContact    SettingCategory = "contact"
	SettingCategoryPortfolio  SettingCategory = "portfolio"
)

// Setting is a typed key-value pair. Value always holds the raw string form;
// the declared Type governs how it is parsed on read and serialized on write.
type Setting struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	Key        string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value      string          `gorm:"type:text" json:"value"`
	Type       SettingType     `gorm:"type:varchar(10);not null;default:'string'" json:"type"`
	Category   SettingCategory `gorm:"type:varchar(20);not null;default:'general';index" json:"category"`
	IsPublic   bool            `gorm:"not null;default:false" json:"isPublic"`
	IsEditable bool            `gorm:"not null;default:true" json:"isEditable"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (t SettingType) Valid() bool {
	switch t {
	case SettingTypeString, SettingTypeNumber, SettingTypeBoolean, SettingTypeJSON, SettingTypeArray:
		return true
	}
	return false
}

func (c SettingCategory) Valid() bool {
	switch c {
	case SettingCategoryGeneral, SettingCategorySocial, SettingCategorySEO,
		SettingCategoryAppearance, SettingCategoryContact, SettingCategoryPortfolio:
		return true
	}
	return false
}
